package usecase

import (
	"context"

	"meeting-scheduler/internal/meeting"
	"meeting-scheduler/internal/meeting/repository"
	"meeting-scheduler/internal/model"
)

// List returns the caller's meetings in creation order with advisory overlaps.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (meeting.ListOutput, error) {
	if sc.UserEmail == "" {
		return meeting.ListOutput{}, meeting.ErrUnauthenticated
	}

	meetings, err := uc.repo.ListMeetings(ctx, repository.ListMeetingsOptions{Owner: sc.UserEmail})
	if err != nil {
		uc.l.Errorf(ctx, "List: repo.ListMeetings: %v", err)
		return meeting.ListOutput{}, err
	}

	return meeting.ListOutput{
		Meetings: meetings,
		Overlaps: findOverlaps(meetings),
	}, nil
}

// Clear forgets every meeting recorded for the caller.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) error {
	if sc.UserEmail == "" {
		return meeting.ErrUnauthenticated
	}

	if err := uc.repo.ClearMeetings(ctx, sc.UserEmail); err != nil {
		uc.l.Errorf(ctx, "Clear: repo.ClearMeetings: %v", err)
		return err
	}
	uc.l.Infof(ctx, "Clear: cleared meetings for user=%s", sc.UserEmail)
	return nil
}
