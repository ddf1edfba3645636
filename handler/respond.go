package handler

import (
	"main/apperr"
	"main/middleware"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError records the failure kind and renders the classified error.
func respondError(c *gin.Context, err error) {
	middleware.TrackError(string(apperr.KindOf(err)))
	utils.Error(c, err)
}
