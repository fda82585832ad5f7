package usecase

import (
	"context"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/model"
	"meeting-scheduler/pkg/gcalendar"
)

// CalendarStatus checks that the Calendar API is reachable with the caller's token.
func (uc *implUseCase) CalendarStatus(ctx context.Context, sc model.Scope) (meeting.CalendarStatusOutput, error) {
	if !sc.Authenticated() {
		return meeting.CalendarStatusOutput{}, meeting.ErrUnauthenticated
	}

	var cals []gcalendar.Calendar
	refreshed, err := uc.withCalendar(ctx, sc.Token, func(cal meeting.Calendar) error {
		var lErr error
		cals, lErr = cal.ListCalendars(ctx)
		return lErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "CalendarStatus: %v", err)
		return meeting.CalendarStatusOutput{RefreshedToken: refreshed}, err
	}

	return meeting.CalendarStatusOutput{
		Calendars:      len(cals),
		PrimaryID:      primaryCalendarID(cals),
		RefreshedToken: refreshed,
	}, nil
}
