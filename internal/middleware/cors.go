package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// localhost on any port is always allowed; everything else must appear in
// the configured allowlist.
var localhostOrigin = regexp.MustCompile(`^https?://localhost(:\d+)?$`)

// CORS mirrors the browser allowlist behaviour of the frontend deployment:
// requests without an Origin header (curl, server-to-server) pass through.
func CORS(allowed []string) gin.HandlerFunc {
	allowedSet := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		allowedSet[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if !localhostOrigin.MatchString(origin) && !allowedSet[origin] {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not allowed by CORS"})
				return
			}
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
