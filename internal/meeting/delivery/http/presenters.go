package http

import (
	"time"

	"meeting-scheduler/internal/meeting"
)

// --- Request DTOs ---

type createReq struct {
	Title         string `json:"title"`
	ScheduledTime string `json:"scheduledTime"`
	IsInstant     bool   `json:"isInstant"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() meeting.CreateInput {
	return meeting.CreateInput{
		Title:         r.Title,
		ScheduledTime: r.ScheduledTime,
		IsInstant:     r.IsInstant,
	}
}

// --- Response DTOs ---

type meetingResp struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	MeetLink        string  `json:"meetLink"`
	ScheduledTime   *string `json:"scheduledTime"`
	IsInstant       bool    `json:"isInstant"`
	CreatedAt       string  `json:"createdAt"`
	CalendarEventID string  `json:"calendarEventId"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func newMeetingResp(m meeting.Meeting) meetingResp {
	resp := meetingResp{
		ID:              m.ID,
		Title:           m.Title,
		MeetLink:        m.MeetLink,
		IsInstant:       m.IsInstant,
		CreatedAt:       formatTime(m.CreatedAt),
		CalendarEventID: m.CalendarEventID,
	}
	if m.ScheduledTime != nil {
		st := formatTime(*m.ScheduledTime)
		resp.ScheduledTime = &st
	}
	return resp
}

func (h *handler) newCreateResp(out meeting.CreateOutput) meetingResp {
	return newMeetingResp(out.Meeting)
}

type overlapResp struct {
	A string `json:"a"`
	B string `json:"b"`
}

type listResp struct {
	Meetings []meetingResp `json:"meetings"`
	Overlaps []overlapResp `json:"overlaps"`
}

func (h *handler) newListResp(out meeting.ListOutput) listResp {
	meetings := make([]meetingResp, len(out.Meetings))
	for i, m := range out.Meetings {
		meetings[i] = newMeetingResp(m)
	}
	overlaps := make([]overlapResp, len(out.Overlaps))
	for i, o := range out.Overlaps {
		overlaps[i] = overlapResp{A: o.FirstID, B: o.SecondID}
	}
	return listResp{
		Meetings: meetings,
		Overlaps: overlaps,
	}
}

type statusResp struct {
	Reachable bool   `json:"reachable"`
	Calendars int    `json:"calendars"`
	Primary   string `json:"primary"`
}

func (h *handler) newStatusResp(out meeting.CalendarStatusOutput) statusResp {
	return statusResp{
		Reachable: true,
		Calendars: out.Calendars,
		Primary:   out.PrimaryID,
	}
}
