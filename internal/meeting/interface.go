package meeting

import (
	"context"

	"golang.org/x/oauth2"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Clear(ctx context.Context, sc model.Scope) error
	CalendarStatus(ctx context.Context, sc model.Scope) (CalendarStatusOutput, error)
}

// Calendar is the slice of the Calendar API the use case calls.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error)
}

// CalendarProvider hands out a Calendar acting with the given token.
type CalendarProvider interface {
	ForToken(ctx context.Context, tok *oauth2.Token) (Calendar, error)
}

// TokenRefresher exchanges a refresh token for a new access token.
type TokenRefresher interface {
	Refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error)
}
