package middleware

import (
	"busfinder/internal/domain/models"
	"busfinder/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session_state"

// Session loads the visitor's state once per request. Handlers that change it
// write it back through the manager.
func Session(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, m.Load(c.Request))
		c.Next()
	}
}

// GetSession returns the state loaded by Session, or a browsing state.
func GetSession(c *gin.Context) models.SessionState {
	if c == nil {
		return models.SessionState{}
	}
	if v, ok := c.Get(sessionKey); ok {
		if st, ok := v.(models.SessionState); ok {
			return st
		}
	}
	return models.SessionState{}
}
