package http

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/middleware"
)

// RegisterRoutes maps the meeting endpoints under rg (mounted at /api).
// Every route needs a session; rate limiting runs after Auth so it can key on the user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/create-meeting", mw.Auth(), mw.RateLimit(), h.Create)

	meetings := rg.Group("/meetings", mw.Auth(), mw.RateLimit())
	{
		meetings.GET("", h.List)
		meetings.DELETE("", h.Clear)
	}

	rg.GET("/calendar/status", mw.Auth(), mw.RateLimit(), h.CalendarStatus)
}
