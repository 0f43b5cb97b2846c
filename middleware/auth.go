package middleware

import (
	"net/http"
	"strings"

	"modernschedule/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SessionAuthMiddleware validates the Bearer token and requires a live
// session behind it. On success the session ID and username are placed in
// the request context.
func SessionAuthMiddleware(sessions *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The token alone is not enough; logout kills the session server-side.
		session, err := utils.GetAuthSession(sessions, sessionID)
		if err != nil || session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("sessionID", session.SessionID)
		c.Set("username", session.Username)
		c.Next()
	}
}
