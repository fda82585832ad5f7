package usecase

import (
	"meeting-scheduler/internal/auth"
	pkgLog "meeting-scheduler/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	provider auth.Provider
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, provider auth.Provider) *implUseCase {
	return &implUseCase{
		l:        l,
		provider: provider,
	}
}
