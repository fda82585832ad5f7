package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/meeting/repository"
	"meeting-scheduler/internal/model"
	"meeting-scheduler/pkg/gcalendar"
)

// Create books a Google Calendar event with a Meet conference for the caller
// and records the resulting meeting.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input meeting.CreateInput) (meeting.CreateOutput, error) {
	if !sc.Authenticated() {
		return meeting.CreateOutput{}, meeting.ErrUnauthenticated
	}

	now := uc.now()
	title := strings.TrimSpace(input.Title)

	m := meeting.Meeting{IsInstant: input.IsInstant}
	if input.IsInstant {
		if title == "" {
			title = meeting.DefaultInstantTitle
		}
		m.StartTime = now.Add(meeting.InstantLeadTime).UTC().Truncate(timeResolution)
	} else {
		start, err := uc.validateScheduled(title, input.ScheduledTime, now)
		if err != nil {
			return meeting.CreateOutput{}, err
		}
		m.StartTime = start
		m.ScheduledTime = &start
	}
	m.Title = title
	m.EndTime = m.StartTime.Add(meeting.MeetingDuration)

	uc.l.Infof(ctx, "Create: user=%s instant=%t start=%s", sc.UserEmail, m.IsInstant, m.StartTime.Format(timeLayout))

	req := gcalendar.CreateEventRequest{
		CalendarID:          uc.calendarID,
		Summary:             m.Title,
		StartTime:           m.StartTime,
		EndTime:             m.EndTime,
		Timezone:            uc.timezone,
		Attendees:           []string{sc.UserEmail},
		ConferenceRequestID: uuid.NewString(),
	}

	var event *gcalendar.Event
	refreshed, err := uc.withCalendar(ctx, sc.Token, func(cal meeting.Calendar) error {
		var cErr error
		event, cErr = cal.CreateEvent(ctx, req)
		return cErr
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: calendar insert failed: %v", err)
		return meeting.CreateOutput{RefreshedToken: refreshed}, err
	}
	if event == nil || event.MeetLink == "" {
		uc.l.Errorf(ctx, "Create: event created without a Meet link")
		return meeting.CreateOutput{RefreshedToken: refreshed}, meeting.ErrMeetLinkMissing
	}

	m.ID = event.ID
	m.CalendarEventID = event.ID
	m.MeetLink = event.MeetLink
	m.CreatedAt = uc.now().UTC()

	if err := uc.repo.AddMeeting(ctx, repository.AddMeetingOptions{Owner: sc.UserEmail, Meeting: m}); err != nil {
		uc.l.Warnf(ctx, "Create: failed to record meeting %s (non-fatal): %v", m.ID, err)
	}

	uc.l.Infof(ctx, "Create: created meeting %s for user=%s", m.ID, sc.UserEmail)

	return meeting.CreateOutput{Meeting: m, RefreshedToken: refreshed}, nil
}

// validateScheduled checks a scheduled request and returns its start in UTC.
func (uc *implUseCase) validateScheduled(title, raw string, now time.Time) (time.Time, error) {
	if title == "" {
		return time.Time{}, meeting.ErrTitleRequired
	}
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, meeting.ErrScheduledTimeRequired
	}
	start, err := uc.dateMath.ParseInstant(raw)
	if err != nil {
		return time.Time{}, meeting.ErrScheduledTimeInvalid
	}
	if !start.After(now) {
		return time.Time{}, meeting.ErrScheduledTimeInPast
	}
	return start.UTC(), nil
}
