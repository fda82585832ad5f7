package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/internal/meeting"
	repo "meeting-scheduler/internal/meeting/repository"
	"meeting-scheduler/internal/meeting/repository/memory"
)

func newMeeting(id string) meeting.Meeting {
	start := time.Date(2999, 1, 1, 10, 0, 0, 0, time.UTC)
	return meeting.Meeting{
		ID:        id,
		Title:     "Meeting " + id,
		MeetLink:  "https://meet.google.com/" + id,
		StartTime: start,
		EndTime:   start.Add(meeting.MeetingDuration),
	}
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	r := memory.New(memory.Config{})

	require.NoError(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "ada@example.com", Meeting: newMeeting("a")}))
	require.NoError(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "ada@example.com", Meeting: newMeeting("b")}))
	require.NoError(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "bob@example.com", Meeting: newMeeting("c")}))

	ada, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "ada@example.com"})
	require.NoError(t, err)
	require.Len(t, ada, 2)
	assert.Equal(t, "a", ada[0].ID)
	assert.Equal(t, "b", ada[1].ID)

	bob, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "bob@example.com"})
	require.NoError(t, err)
	require.Len(t, bob, 1)

	nobody, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "nobody@example.com"})
	require.NoError(t, err)
	assert.NotNil(t, nobody)
	assert.Empty(t, nobody)
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := memory.New(memory.Config{})
	require.NoError(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "ada@example.com", Meeting: newMeeting("a")}))

	list, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "ada@example.com"})
	require.NoError(t, err)
	list[0].Title = "changed"

	again, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Meeting a", again[0].Title)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	r := memory.New(memory.Config{})
	require.NoError(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "ada@example.com", Meeting: newMeeting("a")}))

	require.NoError(t, r.ClearMeetings(ctx, "ada@example.com"))

	list, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "ada@example.com"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOwnerRequired(t *testing.T) {
	ctx := context.Background()
	r := memory.New(memory.Config{})

	assert.ErrorIs(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Meeting: newMeeting("a")}), repo.ErrOwnerRequired)
	_, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{})
	assert.ErrorIs(t, err, repo.ErrOwnerRequired)
	assert.ErrorIs(t, r.ClearMeetings(ctx, ""), repo.ErrOwnerRequired)
	assert.ErrorIs(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "ada@example.com"}), repo.ErrFailedToInsert)
}

func TestEvictsLeastRecentlyUsedOwner(t *testing.T) {
	ctx := context.Background()
	r := memory.New(memory.Config{MaxOwners: 2})

	for _, owner := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: owner, Meeting: newMeeting(owner)}))
	}

	first, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "a@example.com"})
	require.NoError(t, err)
	assert.Empty(t, first, "oldest owner should have been evicted")

	last, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "c@example.com"})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestExpires(t *testing.T) {
	ctx := context.Background()
	r := memory.New(memory.Config{TTL: 20 * time.Millisecond})
	require.NoError(t, r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "ada@example.com", Meeting: newMeeting("a")}))

	assert.Eventually(t, func() bool {
		list, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "ada@example.com"})
		return err == nil && len(list) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	r := memory.New(memory.Config{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.AddMeeting(ctx, repo.AddMeetingOptions{Owner: "ada@example.com", Meeting: newMeeting(fmt.Sprint(i))})
		}(i)
	}
	wg.Wait()

	list, err := r.ListMeetings(ctx, repo.ListMeetingsOptions{Owner: "ada@example.com"})
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
