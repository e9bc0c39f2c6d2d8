package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	officer := f.signUp("arjun", domain.RoleClubOfficer)
	student := f.signUp("kiran", domain.RoleStudent)
	club := f.club(owner)

	t.Run("standalone", func(t *testing.T) {
		e, err := f.events.Create(f.ctx, officer, EventInput{Title: "Talk", EventDate: epoch.Add(time.Hour)})
		require.NoError(t, err)
		require.Equal(t, officer.ID, e.CreatedBy)
		require.True(t, e.IsActive)
	})

	t.Run("students cannot publish", func(t *testing.T) {
		_, err := f.events.Create(f.ctx, student, EventInput{Title: "Party", EventDate: epoch.Add(time.Hour)})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("club linked requires club ownership", func(t *testing.T) {
		_, err := f.events.Create(f.ctx, officer, EventInput{Title: "Expo", EventDate: epoch.Add(time.Hour), ClubID: club.ID})
		require.ErrorIs(t, err, domain.ErrForbidden)

		e, err := f.events.Create(f.ctx, owner, EventInput{Title: "Expo", EventDate: epoch.Add(time.Hour), ClubID: club.ID})
		require.NoError(t, err)
		require.Equal(t, club.ID, e.ClubID)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.events.Create(f.ctx, owner, EventInput{Title: "Late", EventDate: epoch, RegistrationDeadline: timePtr(epoch.Add(time.Minute))})
		require.ErrorIs(t, err, domain.ErrInvalidSchedule)

		_, err = f.events.Create(f.ctx, owner, EventInput{Title: "Neg", EventDate: epoch, MaxParticipants: intPtr(-1)})
		require.ErrorIs(t, err, domain.ErrInvalidCapacity)

		_, err = f.events.Create(f.ctx, owner, EventInput{EventDate: epoch})
		require.ErrorIs(t, err, domain.ErrRequiredField)

		_, err = f.events.Create(f.ctx, owner, EventInput{Title: "Ghost club", EventDate: epoch, ClubID: "nope"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inactive club", func(t *testing.T) {
		c := f.club(officer)
		require.NoError(t, f.clubs.Deactivate(f.ctx, officer, c.ID))
		_, err := f.events.Create(f.ctx, officer, EventInput{Title: "After", EventDate: epoch, ClubID: c.ID})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListEventsByStage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)

	past := f.event(owner, EventInput{Title: "Past", EventDate: epoch.Add(-48 * time.Hour)})
	now := f.event(owner, EventInput{Title: "Now", EventDate: epoch.Add(-time.Hour)})
	soon := f.event(owner, EventInput{Title: "Soon", EventDate: epoch.Add(time.Hour)})
	gone := f.event(owner, EventInput{Title: "Gone", EventDate: epoch.Add(2 * time.Hour)})
	require.NoError(t, f.events.Deactivate(f.ctx, owner, gone.ID))

	all, err := f.events.List(f.ctx, EventQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3, "inactive events are not listed")

	stages := map[string]domain.Stage{}
	for _, l := range all {
		stages[l.ID] = l.Stage
	}
	require.Equal(t, domain.StageCompleted, stages[past.ID])
	require.Equal(t, domain.StageOngoing, stages[now.ID])
	require.Equal(t, domain.StageUpcoming, stages[soon.ID])

	upcoming, err := f.events.List(f.ctx, EventQuery{Stage: domain.StageUpcoming})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	require.Equal(t, soon.ID, upcoming[0].ID)

	owned, err := f.events.ListOwned(f.ctx, owner)
	require.NoError(t, err)
	require.Len(t, owned, 4)
	for _, l := range owned {
		if l.ID == gone.ID {
			require.Zero(t, l.Stage, "inactive events are not classified")
		}
	}

	_, err = f.events.ListOwned(f.ctx, domain.Identity{})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateEvent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	other := f.signUp("arjun", domain.RoleFaculty)
	e := f.event(owner, EventInput{MaxParticipants: intPtr(5)})

	_, err := f.events.Update(f.ctx, other, e.ID, domain.EventPatch{Title: strPtr("Mine")})
	require.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.events.Update(f.ctx, owner, e.ID, domain.EventPatch{Location: strPtr("Auditorium"), ClearMaxParticipants: true})
	require.NoError(t, err)
	require.Equal(t, "Auditorium", got.Location)
	require.Nil(t, got.MaxParticipants)
	require.Equal(t, owner.ID, got.CreatedBy)

	late := e.EventDate.Add(time.Hour)
	_, err = f.events.Update(f.ctx, owner, e.ID, domain.EventPatch{RegistrationDeadline: &late})
	require.ErrorIs(t, err, domain.ErrInvalidSchedule)

	stored, err := f.events.Get(f.ctx, e.ID)
	require.NoError(t, err)
	require.Nil(t, stored.RegistrationDeadline, "rejected update leaves the event unchanged")
	require.Equal(t, domain.StageUpcoming, stored.Stage)
}

func TestUpdateEventCapacityBelowActive(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	e := f.event(owner, EventInput{MaxParticipants: intPtr(5)})

	for _, s := range f.students(3) {
		_, err := f.registrations.Register(f.ctx, s, e.ID)
		require.NoError(t, err)
	}

	_, err := f.events.Update(f.ctx, owner, e.ID, domain.EventPatch{MaxParticipants: intPtr(2)})
	require.ErrorIs(t, err, domain.ErrInvalidCapacity)

	got, err := f.events.Update(f.ctx, owner, e.ID, domain.EventPatch{MaxParticipants: intPtr(3)})
	require.NoError(t, err)
	require.Equal(t, 3, *got.MaxParticipants)
}

func TestDeactivateEvent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.signUp("meera", domain.RoleFaculty)
	other := f.signUp("arjun", domain.RoleFaculty)
	e := f.event(owner, EventInput{})

	require.ErrorIs(t, f.events.Deactivate(f.ctx, other, e.ID), domain.ErrForbidden)
	require.NoError(t, f.events.Deactivate(f.ctx, owner, e.ID))
	require.ErrorIs(t, f.events.Deactivate(f.ctx, owner, "missing"), domain.ErrNotFound)

	got, err := f.events.Get(f.ctx, e.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}
