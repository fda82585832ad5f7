package http

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/middleware"
)

// RegisterRoutes maps the auth endpoints under rg (mounted at /api/auth).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/signin", mw.RateLimit(), h.SignIn)
	rg.GET("/callback/google", mw.RateLimit(), h.Callback)
	rg.GET("/session", h.Session)
	rg.POST("/signout", h.SignOut)
}
