package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalAuth creates a Gin middleware that guards internal endpoints such
// as the deadline sweep trigger. Requests must carry the shared service
// token in the X-Internal-Token header; there is no user identity on these
// routes.
func InternalAuth(serviceToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if serviceToken == "" {
			logger.Error("Internal route hit but no service token configured")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Internal endpoints disabled"})
			return
		}

		provided := c.GetHeader("X-Internal-Token")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(serviceToken)) != 1 {
			logger.Warn("Internal token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid service token"})
			return
		}

		c.Next()
	}
}
