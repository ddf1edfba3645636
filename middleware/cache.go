package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheControlMiddleware sets the browser cache policy for list endpoints.
// maxAge <= 0 means no-store; the server itself never caches reads.
func CacheControlMiddleware(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxAge > 0 {
			c.Header("Cache-Control", "public, max-age="+strconv.Itoa(maxAge))
		} else {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
