package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
)

// SessionCookie is the name of the session token cookie
const SessionCookie = "session_id"

// currentUserKey is the gin context key holding the verified caller
const currentUserKey = "currentUser"

// sessionMiddleware resolves the session cookie to a verified user and
// stores it in the request context. Anonymous requests pass through.
func sessionMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if user, err := auth.Verify(c.Request.Context(), token); err == nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

// requireAuth aborts with 401 unless a verified session is present
func requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// currentUser returns the verified caller, if any
func currentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
