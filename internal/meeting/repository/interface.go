package repository

import (
	"context"

	"meeting-scheduler/internal/meeting"
)

// Repository is the composed interface for the meeting domain data store.
type Repository interface {
	MeetingRepository
}

// MeetingRepository keeps each user's meetings in creation order.
type MeetingRepository interface {
	AddMeeting(ctx context.Context, opt AddMeetingOptions) error
	ListMeetings(ctx context.Context, opt ListMeetingsOptions) ([]meeting.Meeting, error)
	ClearMeetings(ctx context.Context, owner string) error
}
