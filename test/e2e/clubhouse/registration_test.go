package clubhouse_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
)

// TestClubEventLifecycle walks a faculty member through creating a club,
// staffing it and publishing an event students register for.
func TestClubEventLifecycle(t *testing.T) {
	svc := setupClubhouse(t)
	ctx := t.Context()

	faculty := svc.signUp("meera", "faculty")
	student := svc.signUp("asha", "student")

	club, err := faculty.CreateClub(ctx, clubsdk.ClubRequest{Name: "Robotics", Department: "ECE"})
	require.NoError(t, err)

	_, err = faculty.AddMember(ctx, club.ID, clubsdk.AddMemberRequest{Email: "asha@cmrit.ac.in", Position: "event_manager"})
	require.NoError(t, err)

	roster, err := student.ListMembers(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, roster.Members, 1)

	ev, err := faculty.CreateEvent(ctx, clubsdk.EventRequest{
		Title:     "Line Follower Workshop",
		EventDate: time.Now().Add(72 * time.Hour).UTC(),
		ClubID:    club.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "upcoming", ev.Stage)

	reg, err := student.Register(ctx, ev.ID)
	require.NoError(t, err)

	_, err = student.Register(ctx, ev.ID)
	require.True(t, clubsdk.IsCode(err, clubsdk.CodeAlreadyRegistered))

	require.NoError(t, student.CancelRegistration(ctx, reg.ID))
	regs, err := faculty.ListRegistrations(ctx, ev.ID)
	require.NoError(t, err)
	require.Zero(t, regs.Count)
}

// TestConcurrentRegistrationAtCapacity registers many students at once for
// an event with few seats; exactly the capacity must be admitted.
func TestConcurrentRegistrationAtCapacity(t *testing.T) {
	svc := setupClubhouse(t)
	ctx := t.Context()

	const (
		seats    = 5
		students = 25
	)

	faculty := svc.signUp("meera", "faculty")
	capacity := seats
	ev, err := faculty.CreateEvent(ctx, clubsdk.EventRequest{
		Title:           "Keynote",
		EventDate:       time.Now().Add(48 * time.Hour).UTC(),
		MaxParticipants: &capacity,
	})
	require.NoError(t, err)

	clients := make([]*clubsdk.Client, students)
	for i := range clients {
		clients[i] = svc.signUp(fmt.Sprintf("student%02d", i), "student")
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
		ok   int
	)
	start := make(chan struct{})
	for _, c := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := c.Register(ctx, ev.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			ok++
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, seats, ok)
	require.Len(t, errs, students-seats)
	for _, err := range errs {
		require.True(t, clubsdk.IsCode(err, clubsdk.CodeCapacityExceeded), err.Error())
	}

	regs, err := faculty.ListRegistrations(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, seats, regs.Count)
}
