package meeting

import (
	"time"

	"golang.org/x/oauth2"
)

const (
	// MeetingDuration is the fixed length of every calendar-backed meeting.
	MeetingDuration = time.Hour
	// InstantLeadTime pushes instant meetings slightly into the future so
	// Calendar accepts them as upcoming events.
	InstantLeadTime = 2 * time.Minute

	DefaultInstantTitle = "Instant Meeting"
)

// --- Meeting Domain Model ---

// Meeting is a created meeting. It is never mutated after creation.
type Meeting struct {
	ID              string
	Title           string
	MeetLink        string
	ScheduledTime   *time.Time // nil for instant meetings
	IsInstant       bool
	StartTime       time.Time
	EndTime         time.Time
	CreatedAt       time.Time
	CalendarEventID string
}

// Overlap pairs two meetings whose time ranges intersect.
type Overlap struct {
	FirstID  string
	SecondID string
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title         string
	ScheduledTime string
	IsInstant     bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Meeting Meeting
	// RefreshedToken is set when the provider token was refreshed during the call.
	RefreshedToken *oauth2.Token
}

type ListOutput struct {
	Meetings []Meeting
	Overlaps []Overlap
}

type CalendarStatusOutput struct {
	Calendars      int
	PrimaryID      string
	RefreshedToken *oauth2.Token
}
