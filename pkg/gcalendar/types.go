package gcalendar

import "time"

const (
	PrimaryCalendarID  = "primary"
	ConferenceTypeMeet = "hangoutsMeet"
	EntryPointVideo    = "video"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Oslo"
	Attendees   []string
	// ConferenceRequestID asks Calendar to attach a Meet conference when set.
	// Calendar deduplicates conference creation per id.
	ConferenceRequestID string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	MeetLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// Calendar is an entry of the user's calendar list.
type Calendar struct {
	ID      string
	Summary string
	Primary bool
}
