package usecase

import (
	"time"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/meeting/repository"
	"meeting-scheduler/pkg/datemath"
	"meeting-scheduler/pkg/gcalendar"
	pkgLog "meeting-scheduler/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendars  meeting.CalendarProvider
	refresher  meeting.TokenRefresher
	dateMath   *datemath.Parser
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a new meeting UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendars meeting.CalendarProvider,
	refresher meeting.TokenRefresher,
	dateMath *datemath.Parser,
	calendarID string,
	timezone string,
) *implUseCase {
	if calendarID == "" {
		calendarID = gcalendar.PrimaryCalendarID
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendars:  calendars,
		refresher:  refresher,
		dateMath:   dateMath,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
	}
}
