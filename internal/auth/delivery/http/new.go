package http

import (
	"meeting-scheduler/internal/auth"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/log"
)

const (
	stateCookieName   = "meeting_oauth_state"
	stateCookieMaxAge = 600
)

// Config holds the redirect settings of the auth handlers.
type Config struct {
	// BaseURL is where the browser lands after signing in.
	BaseURL string
}

type handler struct {
	l        log.Logger
	uc       auth.UseCase
	sessions *session.Manager
	cfg      Config
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, sessions *session.Manager, cfg Config) *handler {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/"
	}
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
		cfg:      cfg,
	}
}
