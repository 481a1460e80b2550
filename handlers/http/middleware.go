package httpHandler

import (
	"net/http"

	"workout-server/sessions"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "workout_session"

const msgLoginRequired = "You must be logged in to view this page."

// RequireSession resolves the session cookie and stores the user ID in
// the request context. Requests without a live session get a 401.
func RequireSession(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msgLoginRequired,
			})
			return
		}
		userID, ok := store.Resolve(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msgLoginRequired,
			})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// currentUserID returns the user ID RequireSession stored on the context.
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
