package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrCapacityReached is returned by InsertRegistrationIfCapacity when the
	// event already holds max_participants confirmed registrations.
	ErrCapacityReached = errors.New("store: capacity reached")

	// ErrInactive is returned by InsertRegistrationIfCapacity when the event
	// has been deactivated.
	ErrInactive = errors.New("store: inactive")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres, memory) implement this. Sub-repositories are methods so a Tx
// hands out repos bound to the transaction, and nothing can start a
// transaction within a transaction.
type Store interface {
	Identities() Identities
	Clubs() Clubs
	Events() Events
	Memberships() Memberships
	Registrations() Registrations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Identities interface {
	GetIdentityByID(ctx context.Context, id string) (domain.Identity, error)

	// FindIdentityByEmail matches case-insensitively.
	FindIdentityByEmail(ctx context.Context, email string) (domain.Identity, error)

	// CreateIdentity returns ErrAlreadyExists when the id or email is taken.
	CreateIdentity(ctx context.Context, i domain.Identity) error

	// UpdateProfile saves display name, department and year of study.
	UpdateProfile(ctx context.Context, i domain.Identity) error
}

type ClubFilter struct {
	CreatedBy       string
	IncludeInactive bool
}

type Clubs interface {
	GetClub(ctx context.Context, id string) (domain.Club, error)

	// ListClubs returns clubs ordered by name.
	ListClubs(ctx context.Context, f ClubFilter) ([]domain.Club, error)

	CreateClub(ctx context.Context, c domain.Club) error

	// UpdateClub saves the editable fields of c and bumps updated_at.
	UpdateClub(ctx context.Context, c domain.Club) error

	// DeactivateClub flips is_active off. It is not an error to deactivate
	// an inactive club.
	DeactivateClub(ctx context.Context, id string, at time.Time) error
}

type EventFilter struct {
	ClubID          string
	CreatedBy       string
	IncludeInactive bool
}

type Events interface {
	// GetEvent returns an event by id. Inside a Tx drivers that support row
	// locks hold the event row until the transaction ends.
	GetEvent(ctx context.Context, id string) (domain.Event, error)

	// ListEvents returns events ordered by event date.
	ListEvents(ctx context.Context, f EventFilter) ([]domain.Event, error)

	CreateEvent(ctx context.Context, e domain.Event) error

	// UpdateEvent saves the editable fields of e. created_by is never
	// written.
	UpdateEvent(ctx context.Context, e domain.Event) error

	DeactivateEvent(ctx context.Context, id string, at time.Time) error
}

type Memberships interface {
	GetMembership(ctx context.Context, id string) (domain.Membership, error)

	// ListMemberships returns the active roster of a club ordered by join time.
	ListMemberships(ctx context.Context, clubID string) ([]domain.Membership, error)

	// InsertMembershipIfAbsent inserts m unless an active membership for
	// (m.ClubID, m.IdentityID) exists, in which case ErrAlreadyExists.
	InsertMembershipIfAbsent(ctx context.Context, m domain.Membership) error

	// DeactivateMembership returns ErrNotFound when the membership is absent
	// or already inactive.
	DeactivateMembership(ctx context.Context, id string, at time.Time) error

	// UpdateMembershipPosition returns ErrNotFound for inactive memberships.
	UpdateMembershipPosition(ctx context.Context, id string, p domain.Position) error
}

type Registrations interface {
	GetRegistration(ctx context.Context, id string) (domain.Registration, error)

	// ListRegistrations returns confirmed registrations for an event ordered
	// by registration time.
	ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error)

	CountActiveRegistrations(ctx context.Context, eventID string) (int, error)

	FindActiveRegistration(ctx context.Context, eventID, identityID string) (domain.Registration, error)

	// InsertRegistrationIfCapacity inserts r if the event is active and its
	// confirmed count is below the event's current max_participants. The
	// event row is read inside the same atomic step, so a concurrent edit or
	// deactivation is always observed. Returns ErrNotFound for a missing
	// event, ErrInactive, ErrCapacityReached, or ErrAlreadyExists when the
	// identity already holds a confirmed registration for the event.
	InsertRegistrationIfCapacity(ctx context.Context, r domain.Registration) error

	// CancelRegistration returns ErrNotFound when the registration is absent
	// or already cancelled.
	CancelRegistration(ctx context.Context, id string, at time.Time) error
}
