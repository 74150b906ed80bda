package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session resolves the storefront session id for a request. Clients
// send X-Session-ID; a missing or empty header gets a freshly minted
// id, echoed back so the client can persist it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(sessionContextKey, sessionID)
		c.Header("X-Session-ID", sessionID)

		c.Next()
	}
}

// GetSessionIDFromContext extracts the session id from gin context
func GetSessionIDFromContext(c *gin.Context) string {
	if sessionID, exists := c.Get(sessionContextKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
