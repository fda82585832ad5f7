package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/pkg/gcalendar"
)

// tokenExpired reports whether the provider token is known to be expired.
// A zero expiry means unknown and is treated as live.
func (uc *implUseCase) tokenExpired(tok *oauth2.Token) bool {
	return !tok.Expiry.IsZero() && !tok.Expiry.After(uc.now())
}

func (uc *implUseCase) refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
	if uc.refresher == nil {
		return nil, meeting.ErrTokenRefresh
	}
	fresh, err := uc.refresher.Refresh(ctx, tok)
	if err != nil {
		uc.l.Warnf(ctx, "meeting.usecase.refresh: %v", err)
		return nil, fmt.Errorf("%w: %v", meeting.ErrTokenRefresh, err)
	}
	return fresh, nil
}

// withCalendar runs fn against the Calendar API acting as tok.
// A known-expired token with a refresh token is refreshed before the call.
// A 401 from the call triggers one refresh and one retry, unless a refresh
// already happened. It returns the token in use at the end, or nil when the
// original one was kept.
func (uc *implUseCase) withCalendar(ctx context.Context, tok *oauth2.Token, fn func(cal meeting.Calendar) error) (*oauth2.Token, error) {
	var refreshed *oauth2.Token

	if uc.tokenExpired(tok) && tok.RefreshToken != "" {
		fresh, err := uc.refresh(ctx, tok)
		if err != nil {
			return nil, err
		}
		tok, refreshed = fresh, fresh
	}

	err := uc.callOnce(ctx, tok, fn)
	if err != nil && gcalendar.IsUnauthorized(err) && refreshed == nil && tok.RefreshToken != "" {
		uc.l.Infof(ctx, "meeting.usecase.withCalendar: access token rejected, refreshing once")
		fresh, rErr := uc.refresh(ctx, tok)
		if rErr != nil {
			return nil, rErr
		}
		tok, refreshed = fresh, fresh
		err = uc.callOnce(ctx, tok, fn)
	}

	if err != nil {
		if gcalendar.IsUnauthorized(err) || errors.Is(err, gcalendar.ErrNoAccessToken) {
			return refreshed, fmt.Errorf("%w: %v", meeting.ErrUnauthenticated, err)
		}
		return refreshed, fmt.Errorf("%w: %v", meeting.ErrUpstream, err)
	}
	return refreshed, nil
}

func (uc *implUseCase) callOnce(ctx context.Context, tok *oauth2.Token, fn func(cal meeting.Calendar) error) error {
	cal, err := uc.calendars.ForToken(ctx, tok)
	if err != nil {
		return err
	}
	return fn(cal)
}

// findOverlaps returns every pair of meetings whose [start, end) ranges
// intersect. Pairs keep creation order.
func findOverlaps(meetings []meeting.Meeting) []meeting.Overlap {
	overlaps := make([]meeting.Overlap, 0)
	for i := 0; i < len(meetings); i++ {
		for j := i + 1; j < len(meetings); j++ {
			a, b := meetings[i], meetings[j]
			if a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime) {
				overlaps = append(overlaps, meeting.Overlap{FirstID: a.ID, SecondID: b.ID})
			}
		}
	}
	return overlaps
}

// primaryCalendarID picks the calendar flagged primary, or the first one.
func primaryCalendarID(cals []gcalendar.Calendar) string {
	for _, c := range cals {
		if c.Primary {
			return c.ID
		}
	}
	if len(cals) > 0 {
		return cals[0].ID
	}
	return ""
}
