package middleware

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/response"
)

// Auth rejects requests without a valid session with 401 and otherwise
// stores the session on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		s, err := m.sessions.FromRequest(c)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(session.SetToContext(ctx, s))
		c.Next()
	}
}
