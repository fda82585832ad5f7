package memory

import (
	"context"

	"meeting-scheduler/internal/meeting"
	repo "meeting-scheduler/internal/meeting/repository"
)

// AddMeeting appends opt.Meeting to the owner's list.
func (r *implRepository) AddMeeting(ctx context.Context, opt repo.AddMeetingOptions) error {
	if opt.Owner == "" {
		return repo.ErrOwnerRequired
	}
	if opt.Meeting.ID == "" {
		return repo.ErrFailedToInsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, _ := r.owners.Get(opt.Owner)
	next := make([]meeting.Meeting, len(current), len(current)+1)
	copy(next, current)
	next = append(next, opt.Meeting)
	r.owners.Add(opt.Owner, next)
	return nil
}

// ListMeetings returns a copy of the owner's list in creation order.
func (r *implRepository) ListMeetings(ctx context.Context, opt repo.ListMeetingsOptions) ([]meeting.Meeting, error) {
	if opt.Owner == "" {
		return nil, repo.ErrOwnerRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.owners.Get(opt.Owner)
	if !ok {
		return []meeting.Meeting{}, nil
	}
	out := make([]meeting.Meeting, len(current))
	copy(out, current)
	return out, nil
}

// ClearMeetings drops the owner's list.
func (r *implRepository) ClearMeetings(ctx context.Context, owner string) error {
	if owner == "" {
		return repo.ErrOwnerRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.owners.Remove(owner)
	return nil
}
