package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/priyansh911911/ashokacrm-sub000/internal/auth"
	"github.com/priyansh911911/ashokacrm-sub000/internal/core"
)

const sessionKey = "session"

// AuthMiddleware validates the bearer token and attaches the rebuilt
// session to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		sess, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFromContext pulls the session attached by AuthMiddleware.
func SessionFromContext(c *gin.Context) (core.Session, bool) {
	val, exists := c.Get(sessionKey)
	if !exists {
		return core.Session{}, false
	}
	sess, ok := val.(core.Session)
	return sess, ok
}
