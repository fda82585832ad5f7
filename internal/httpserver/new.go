package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/auth"
	authHTTP "meeting-scheduler/internal/auth/delivery/http"
	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Cross-cutting
	sessions   *session.Manager
	middleware middleware.Middleware

	// Domains
	meetingUC meeting.UseCase
	authUC    auth.UseCase
	authCfg   authHTTP.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Sessions        *session.Manager
	RateLimitPerMin int

	MeetingUseCase meeting.UseCase
	AuthUseCase    auth.UseCase
	// BaseURL is where the browser lands after sign-in.
	BaseURL string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		sessions:        cfg.Sessions,
		meetingUC:       cfg.MeetingUseCase,
		authUC:          cfg.AuthUseCase,
		authCfg:         authHTTP.Config{BaseURL: cfg.BaseURL},
	}
	srv.middleware = middleware.New(logger, cfg.Sessions, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin})

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.meetingUC == nil {
		return errors.New("meeting usecase is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
