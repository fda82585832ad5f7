package middleware

import (
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/log"
)

type Middleware struct {
	l        log.Logger
	sessions *session.Manager
	limiter  *rateLimiter
}

// Config carries the middleware settings read from config.
type Config struct {
	// RateLimitPerMin is the sustained request rate allowed per caller.
	// Zero disables rate limiting.
	RateLimitPerMin int
}

func New(l log.Logger, sessions *session.Manager, cfg Config) Middleware {
	mw := Middleware{
		l:        l,
		sessions: sessions,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
