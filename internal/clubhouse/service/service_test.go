package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// fixture wires every service to one store and one controllable clock.
type fixture struct {
	t   *testing.T
	ctx context.Context
	now time.Time

	store store.Store

	identities    *IdentityService
	clubs         *ClubService
	events        *EventService
	memberships   *MembershipService
	registrations *RegistrationService
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithStore(t, memory.NewStore())
}

func newFixtureWithStore(t *testing.T, st store.Store) *fixture {
	t.Helper()
	f := &fixture{t: t, ctx: context.Background(), now: epoch, store: st}
	clock := func() time.Time { return f.now }

	f.identities = &IdentityService{Store: st, EmailDomain: DefaultEmailDomain, Now: clock}
	f.clubs = &ClubService{Store: st, EmailDomain: DefaultEmailDomain, Now: clock}
	f.events = &EventService{Store: st, Now: clock}
	f.memberships = &MembershipService{Store: st, Now: clock}
	f.registrations = &RegistrationService{Store: st, Now: clock}
	return f
}

func (f *fixture) signUp(name string, role domain.Role) domain.Identity {
	f.t.Helper()
	ident, err := f.identities.SignUp(f.ctx, SignUpInput{
		Email:       name + "@cmrit.ac.in",
		DisplayName: name,
		Role:        role,
	})
	require.NoError(f.t, err)
	return ident
}

func (f *fixture) students(n int) []domain.Identity {
	out := make([]domain.Identity, n)
	for i := range out {
		out[i] = f.signUp(fmt.Sprintf("student%02d", i), domain.RoleStudent)
	}
	return out
}

func (f *fixture) club(owner domain.Identity) domain.Club {
	f.t.Helper()
	c, err := f.clubs.Create(f.ctx, owner, ClubInput{Name: "Robotics " + owner.DisplayName, Department: "ECE"})
	require.NoError(f.t, err)
	return c
}

func (f *fixture) event(owner domain.Identity, in EventInput) domain.Event {
	f.t.Helper()
	if in.Title == "" {
		in.Title = "Hack Night"
	}
	if in.EventDate.IsZero() {
		in.EventDate = f.now.Add(72 * time.Hour)
	}
	e, err := f.events.Create(f.ctx, owner, in)
	require.NoError(f.t, err)
	return e
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
