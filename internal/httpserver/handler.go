package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "meeting-scheduler/internal/auth/delivery/http"
	meetingHTTP "meeting-scheduler/internal/meeting/delivery/http"
	"meeting-scheduler/internal/model"
	"meeting-scheduler/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestLogger())

	// 405 with a JSON body before any route middleware (auth included) runs.
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoMethod(response.MethodNotAllowed)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	authH := authHTTP.New(srv.l, srv.authUC, srv.sessions, srv.authCfg)
	authHTTP.RegisterRoutes(api.Group("/auth"), authH, srv.middleware)
	srv.l.Infof(ctx, "Auth routes registered under /api/auth")

	meetingH := meetingHTTP.New(srv.l, srv.meetingUC, srv.sessions)
	meetingHTTP.RegisterRoutes(api, meetingH, srv.middleware)
	srv.l.Infof(ctx, "Meeting routes registered at POST /api/create-meeting, /api/meetings, /api/calendar/status")

	return nil
}
