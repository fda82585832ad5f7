package http

import (
	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       meeting.UseCase
	sessions *session.Manager
}

// New creates a new HTTP handler for the meeting domain.
func New(l log.Logger, uc meeting.UseCase, sessions *session.Manager) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
