package repository

import "meeting-scheduler/internal/meeting"

// AddMeetingOptions holds parameters for appending a meeting to an owner's list.
type AddMeetingOptions struct {
	Owner   string
	Meeting meeting.Meeting
}

// ListMeetingsOptions holds filter parameters for listing an owner's meetings.
type ListMeetingsOptions struct {
	Owner string
}
