package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v [request_id=%s]",
					err, c.GetString("request_id"))
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
