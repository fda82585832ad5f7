package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/pkg/gcalendar"
)

type factoryProvider struct {
	factory *gcalendar.Factory
}

// NewCalendarProvider exposes a gcalendar.Factory as a meeting.CalendarProvider.
func NewCalendarProvider(factory *gcalendar.Factory) meeting.CalendarProvider {
	return factoryProvider{factory: factory}
}

func (p factoryProvider) ForToken(ctx context.Context, tok *oauth2.Token) (meeting.Calendar, error) {
	client, err := p.factory.ForToken(ctx, tok)
	if err != nil {
		return nil, err
	}
	return client, nil
}
