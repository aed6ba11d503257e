package middleware

import (
	"net/http"
	"strings"

	"medigo/config"
	"medigo/utils"

	"github.com/gin-gonic/gin"
)

// ServiceAuthMiddleware enforces the static bearer token callers must
// present. When no token is configured, auth is disabled (local dev).
func ServiceAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.AgentServiceToken
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != token {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing or invalid service token")
			c.Abort()
			return
		}
		c.Next()
	}
}
