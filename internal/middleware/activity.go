package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/smart-ledger/ledger-backend/internal/core/session"
)

// SessionActivityMiddleware marks the authenticated user as active on every
// request, resetting their idle-timeout countdown. Must run after
// AuthMiddleware so the user ID is already in the context.
func SessionActivityMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := GetUserIDFromContext(c); ok {
			manager.Touch(userID)
		}
		c.Next()
	}
}
