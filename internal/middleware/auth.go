package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-scheduler-api/internal/auth"
)

// Context keys set by Auth for downstream handlers.
const (
	UserIDKey    = "userId"
	UserEmailKey = "userEmail"
)

// Auth guards a route group. Token comes from Authorization: Bearer <jwt>.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ""
		if v := c.GetHeader("Authorization"); v != "" {
			raw = strings.TrimPrefix(v, "Bearer ")
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}
