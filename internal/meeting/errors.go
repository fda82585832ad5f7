package meeting

import "errors"

var (
	ErrUnauthenticated       = errors.New("not authenticated")
	ErrTokenRefresh          = errors.New("failed to refresh access token")
	ErrTitleRequired         = errors.New("title is required")
	ErrScheduledTimeRequired = errors.New("scheduledTime is required")
	ErrScheduledTimeInvalid  = errors.New("scheduledTime must be an ISO-8601 timestamp")
	ErrScheduledTimeInPast   = errors.New("scheduledTime must be in the future")
	ErrMeetLinkMissing       = errors.New("failed to generate Google Meet link")
	ErrUpstream              = errors.New("calendar request failed")
)
