package http

import (
	"errors"
	"net/http"

	"meeting-scheduler/internal/meeting"
	pkgErrors "meeting-scheduler/pkg/errors"
)

var (
	errInvalidBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errUnauthenticated = pkgErrors.ErrUnauthorized
	errCreateFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to create meeting")
	errCalendarFailed  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to reach calendar")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// upstream is the error used for calendar failures on the calling endpoint.
func (h *handler) mapError(err error, upstream *pkgErrors.HTTPError) error {
	switch {
	case errors.Is(err, meeting.ErrTitleRequired),
		errors.Is(err, meeting.ErrScheduledTimeRequired),
		errors.Is(err, meeting.ErrScheduledTimeInvalid),
		errors.Is(err, meeting.ErrScheduledTimeInPast):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, meeting.ErrUnauthenticated),
		errors.Is(err, meeting.ErrTokenRefresh):
		return errUnauthenticated
	case errors.Is(err, meeting.ErrMeetLinkMissing),
		errors.Is(err, meeting.ErrUpstream):
		return upstream.WithDetail(err.Error())
	default:
		return pkgErrors.ErrInternalServerError.WithDetail(err.Error())
	}
}
