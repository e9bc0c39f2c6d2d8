package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

var _ store.Store = (*Store)(nil)

func TestWithTxCommitAndRollback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Identities().CreateIdentity(ctx, domain.Identity{ID: "a", Email: "a@cmrit.ac.in", Role: domain.RoleStudent, CreatedAt: now})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Identities().CreateIdentity(ctx, domain.Identity{ID: "b", Email: "b@cmrit.ac.in", Role: domain.RoleStudent}))
		_, err := tx.Identities().GetIdentityByID(ctx, "b")
		require.NoError(t, err, "writes are visible inside the tx")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Identities().GetIdentityByID(ctx, "a")
	require.NoError(t, err)
	_, err = s.Identities().GetIdentityByID(ctx, "b")
	require.ErrorIs(t, err, store.ErrNotFound)

	// The lock is released after both outcomes.
	require.NoError(t, s.Ping(ctx))
	_, err = s.Identities().FindIdentityByEmail(ctx, "A@CMRIT.AC.IN")
	require.NoError(t, err)
}

func TestRegistrationCapacity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	capacity := 1
	require.NoError(t, s.Events().CreateEvent(ctx, domain.Event{ID: "e", Title: "Hack Night", MaxParticipants: &capacity, CreatedBy: "o", IsActive: true}))

	r1 := domain.Registration{ID: "r1", EventID: "e", IdentityID: "a"}
	r2 := domain.Registration{ID: "r2", EventID: "e", IdentityID: "b"}
	require.NoError(t, s.Registrations().InsertRegistrationIfCapacity(ctx, r1))
	require.ErrorIs(t, s.Registrations().InsertRegistrationIfCapacity(ctx, r2), store.ErrCapacityReached)
	require.ErrorIs(t, s.Registrations().InsertRegistrationIfCapacity(ctx, domain.Registration{ID: "r3", EventID: "e", IdentityID: "a"}), store.ErrAlreadyExists)
	require.ErrorIs(t, s.Registrations().InsertRegistrationIfCapacity(ctx, domain.Registration{ID: "r4", EventID: "nope", IdentityID: "a"}), store.ErrNotFound)

	require.NoError(t, s.Registrations().CancelRegistration(ctx, "r1", time.Now()))
	require.ErrorIs(t, s.Registrations().CancelRegistration(ctx, "r1", time.Now()), store.ErrNotFound)
	require.NoError(t, s.Registrations().InsertRegistrationIfCapacity(ctx, r2))

	n, err := s.Registrations().CountActiveRegistrations(ctx, "e")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// A deactivated event takes no registration even with seats free.
	require.NoError(t, s.Registrations().CancelRegistration(ctx, "r2", time.Now()))
	require.NoError(t, s.Events().DeactivateEvent(ctx, "e", time.Now()))
	require.ErrorIs(t, s.Registrations().InsertRegistrationIfCapacity(ctx, domain.Registration{ID: "r5", EventID: "e", IdentityID: "c"}), store.ErrInactive)
}
