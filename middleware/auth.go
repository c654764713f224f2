package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
)

// APIKeyAuth guards write endpoints with the shared X-API-KEY secret. Header
// name lookup is case-insensitive per HTTP; the value comparison is exact,
// with no trimming. A missing, blank or mismatched key yields the same 401
// body so callers cannot tell the cases apart.
func APIKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-KEY")
		if strings.TrimSpace(key) == "" {
			utils.LogError("API key missing or blank for %s %s", c.Request.Method, c.Request.URL.Path)
			utils.Unauthorized(c, "Invalid or missing API key")
			c.Abort()
			return
		}

		configured := config.Load().APIKey
		if subtle.ConstantTimeCompare([]byte(key), []byte(configured)) != 1 {
			utils.LogError("API key mismatch for %s %s", c.Request.Method, c.Request.URL.Path)
			utils.Unauthorized(c, "Invalid or missing API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
