package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/memory"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// barrierStore holds every capacity pre-check until n callers have made
// one, so all of them observe the same "seats left" count and the store's
// conditional insert has to settle the race.
type barrierStore struct {
	*memory.Store
	regs *barrierRegistrations
}

func newBarrierStore(n int) *barrierStore {
	mem := memory.NewStore()
	b := &barrierStore{Store: mem, regs: &barrierRegistrations{Registrations: mem.Registrations()}}
	b.regs.counted.Add(n)
	return b
}

func (b *barrierStore) Registrations() store.Registrations { return b.regs }

type barrierRegistrations struct {
	store.Registrations
	counted sync.WaitGroup
}

func (b *barrierRegistrations) CountActiveRegistrations(ctx context.Context, eventID string) (int, error) {
	n, err := b.Registrations.CountActiveRegistrations(ctx, eventID)
	b.counted.Done()
	b.counted.Wait()
	return n, err
}

func TestRegisterScenario(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	s := f.students(4)

	T := epoch.Add(10 * time.Hour)
	e := f.event(owner, EventInput{EventDate: T, MaxParticipants: intPtr(2), RegistrationDeadline: timePtr(T.Add(-time.Hour))})

	f.now = T.Add(-2 * time.Hour)
	_, err := f.registrations.Register(f.ctx, s[0], e.ID)
	require.NoError(t, err)
	_, err = f.registrations.Register(f.ctx, s[1], e.ID)
	require.NoError(t, err)

	_, err = f.registrations.Register(f.ctx, s[2], e.ID)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	require.NotErrorIs(t, err, domain.ErrContended, "sequential rejection comes from the pre-check")

	f.now = T.Add(-30 * time.Minute)
	_, err = f.registrations.Register(f.ctx, s[3], e.ID)
	require.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegisterChecksInOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	s := f.students(2)

	t.Run("inactive", func(t *testing.T) {
		e := f.event(owner, EventInput{})
		require.NoError(t, f.events.Deactivate(f.ctx, owner, e.ID))
		e.IsActive = false

		_, err := f.registrations.Admit(f.ctx, e, s[0])
		require.ErrorIs(t, err, domain.ErrEventInactive)

		// Through policy the inactive event is not open for registration.
		_, err = f.registrations.Register(f.ctx, s[0], e.ID)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("deadline beats stage", func(t *testing.T) {
		e := f.event(owner, EventInput{EventDate: epoch.Add(-time.Hour), RegistrationDeadline: timePtr(epoch.Add(-2 * time.Hour))})
		_, err := f.registrations.Register(f.ctx, s[0], e.ID)
		require.ErrorIs(t, err, domain.ErrRegistrationClosed)
	})

	t.Run("ongoing", func(t *testing.T) {
		e := f.event(owner, EventInput{EventDate: epoch.Add(-time.Hour)})
		_, err := f.registrations.Register(f.ctx, s[0], e.ID)
		require.ErrorIs(t, err, domain.ErrEventNotUpcoming)
	})

	t.Run("completed is forbidden by policy", func(t *testing.T) {
		e := f.event(owner, EventInput{EventDate: epoch.Add(-48 * time.Hour)})
		_, err := f.registrations.Register(f.ctx, s[0], e.ID)
		require.ErrorIs(t, err, domain.ErrForbidden)

		_, err = f.registrations.Admit(f.ctx, e, s[0])
		require.ErrorIs(t, err, domain.ErrEventNotUpcoming)
	})

	t.Run("anonymous", func(t *testing.T) {
		e := f.event(owner, EventInput{})
		_, err := f.registrations.Register(f.ctx, domain.Identity{}, e.ID)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := f.registrations.Register(f.ctx, s[0], "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("already registered beats capacity", func(t *testing.T) {
		e := f.event(owner, EventInput{MaxParticipants: intPtr(1)})
		_, err := f.registrations.Register(f.ctx, s[1], e.ID)
		require.NoError(t, err)

		_, err = f.registrations.Register(f.ctx, s[1], e.ID)
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

		n, err := f.registrations.Count(f.ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, 1, n, "a repeat attempt never stores a second registration")
	})

	t.Run("zero capacity", func(t *testing.T) {
		e := f.event(owner, EventInput{MaxParticipants: intPtr(0)})
		_, err := f.registrations.Register(f.ctx, s[0], e.ID)
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	})
}

func TestRegisterRaceAtCapacity(t *testing.T) {
	t.Parallel()

	const (
		callers  = 20
		capacity = 5
	)
	st := newBarrierStore(callers)
	f := newFixtureWithStore(t, st)
	owner := f.signUp("meera", domain.RoleFaculty)
	s := f.students(callers)
	e := f.event(owner, EventInput{MaxParticipants: intPtr(capacity)})

	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.registrations.Register(f.ctx, s[i], e.ID)
		}()
	}
	wg.Wait()

	ok, rejected := 0, 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
		require.ErrorIs(t, err, domain.ErrContended, "every caller passed the pre-check, so the insert must have refused")
		rejected++
	}
	require.Equal(t, capacity, ok)
	require.Equal(t, callers-capacity, rejected)

	n, err := st.Store.Registrations().CountActiveRegistrations(f.ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, capacity, n)
}

func TestRegisterConcurrentNoOverbooking(t *testing.T) {
	t.Parallel()

	const (
		callers  = 50
		capacity = 7
	)
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	s := f.students(callers)
	e := f.event(owner, EventInput{MaxParticipants: intPtr(capacity)})

	errs := make([]error, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = f.registrations.Register(f.ctx, s[i], e.ID)
		}()
	}
	close(start)
	wg.Wait()

	ok, full := 0, 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
		full++
	}
	require.Equal(t, capacity, ok)
	require.Equal(t, callers-capacity, full)

	n, err := f.registrations.Count(f.ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, capacity, n)
}

func TestSameIdentityConcurrentRegister(t *testing.T) {
	t.Parallel()

	const attempts = 10
	st := newBarrierStore(attempts)
	f := newFixtureWithStore(t, st)
	owner := f.signUp("meera", domain.RoleFaculty)
	me := f.signUp("kiran", domain.RoleStudent)
	e := f.event(owner, EventInput{MaxParticipants: intPtr(attempts)})

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.registrations.Register(f.ctx, me, e.ID)
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		require.ErrorIs(t, err, domain.ErrContended)
	}
	require.Equal(t, 1, ok)

	n, err := st.Store.Registrations().CountActiveRegistrations(f.ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCancelReleasesSeat(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	s := f.students(3)
	e := f.event(owner, EventInput{MaxParticipants: intPtr(2)})

	first, err := f.registrations.Register(f.ctx, s[0], e.ID)
	require.NoError(t, err)
	_, err = f.registrations.Register(f.ctx, s[1], e.ID)
	require.NoError(t, err)
	_, err = f.registrations.Register(f.ctx, s[2], e.ID)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	require.ErrorIs(t, f.registrations.Cancel(f.ctx, s[2], first.ID), domain.ErrForbidden)
	require.NoError(t, f.registrations.Cancel(f.ctx, s[0], first.ID))
	require.ErrorIs(t, f.registrations.Cancel(f.ctx, s[0], first.ID), domain.ErrNotFound)

	third, err := f.registrations.Register(f.ctx, s[2], e.ID)
	require.NoError(t, err)

	// The event owner may cancel on behalf of an attendee.
	require.NoError(t, f.registrations.Cancel(f.ctx, owner, third.ID))

	// A cancelled registrant may come back.
	_, err = f.registrations.Register(f.ctx, s[0], e.ID)
	require.NoError(t, err)
}

func TestListForEvent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	s := f.students(2)
	e := f.event(owner, EventInput{})

	for _, who := range s {
		_, err := f.registrations.Register(f.ctx, who, e.ID)
		require.NoError(t, err)
	}

	regs, err := f.registrations.ListForEvent(f.ctx, owner, e.ID)
	require.NoError(t, err)
	require.Len(t, regs, 2)

	_, err = f.registrations.ListForEvent(f.ctx, s[0], e.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterConcurrentSQLite(t *testing.T) {
	t.Parallel()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "clubhouse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	const (
		callers  = 16
		capacity = 3
	)
	f := newFixtureWithStore(t, st)
	owner := f.signUp("meera", domain.RoleFaculty)
	s := f.students(callers)
	e := f.event(owner, EventInput{MaxParticipants: intPtr(capacity)})

	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.registrations.Register(f.ctx, s[i], e.ID)
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	}
	require.Equal(t, capacity, ok)

	n, err := f.registrations.Count(f.ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, capacity, n)
}
