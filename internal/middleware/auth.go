package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionUserIDKey    = "user_id"
	SessionUserEmailKey = "user_email"
	CurrentUserIDKey    = "current_user_id"
)

// AuthenticationRequired rejects requests without a signed-in session.
func AuthenticationRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(SessionUserIDKey).(uint); ok && id > 0 {
			c.Set(CurrentUserIDKey, id)
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}
