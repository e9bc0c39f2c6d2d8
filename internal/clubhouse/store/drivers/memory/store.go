// Package memory is an in-process store.Store used by tests and local runs.
// Every operation holds one mutex, so conditional inserts are trivially
// atomic. A transaction holds the same mutex from Tx until Commit or
// Rollback and works on a private copy of the data.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

var errTxDone = errors.New("memory: transaction already finished")

type state struct {
	identities    map[string]domain.Identity
	clubs         map[string]domain.Club
	events        map[string]domain.Event
	memberships   map[string]domain.Membership
	registrations map[string]domain.Registration
}

func newState() *state {
	return &state{
		identities:    map[string]domain.Identity{},
		clubs:         map[string]domain.Club{},
		events:        map[string]domain.Event{},
		memberships:   map[string]domain.Membership{},
		registrations: map[string]domain.Registration{},
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copies the maps. Values are never mutated in place, so a shallow
// copy of each entry is enough.
func (s *state) clone() *state {
	return &state{
		identities:    cloneMap(s.identities),
		clubs:         cloneMap(s.clubs),
		events:        cloneMap(s.events),
		memberships:   cloneMap(s.memberships),
		registrations: cloneMap(s.registrations),
	}
}

// db is what the repositories run against. mu is nil inside a transaction,
// where the owning Tx already holds the store lock.
type db struct {
	mu *sync.Mutex
	st *state
}

func (d *db) do(fn func(st *state) error) error {
	if d.mu != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
	}
	return fn(d.st)
}

type Store struct {
	mu sync.Mutex
	st *state
	db *db
}

func NewStore() *Store {
	s := &Store{st: newState()}
	s.db = &db{mu: &s.mu, st: s.st}
	return s
}

func (s *Store) ApplyMigrations() error          { return nil }
func (s *Store) Close() error                    { return nil }
func (s *Store) Ping(ctx context.Context) error  { return ctx.Err() }
func (s *Store) Identities() store.Identities    { return &identitiesRepo{db: s.db} }
func (s *Store) Clubs() store.Clubs              { return &clubsRepo{db: s.db} }
func (s *Store) Events() store.Events            { return &eventsRepo{db: s.db} }
func (s *Store) Memberships() store.Memberships  { return &membershipsRepo{db: s.db} }
func (s *Store) Registrations() store.Registrations {
	return &registrationsRepo{db: s.db}
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &txStore{parent: s, db: &db{st: s.st.clone()}}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type txStore struct {
	parent *Store
	db     *db
	done   bool
}

func (t *txStore) Commit() error {
	if t.done {
		return errTxDone
	}
	*t.parent.st = *t.db.st
	t.done = true
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, errTxDone }
func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errTxDone
}

func (t *txStore) Identities() store.Identities       { return &identitiesRepo{db: t.db} }
func (t *txStore) Clubs() store.Clubs                 { return &clubsRepo{db: t.db} }
func (t *txStore) Events() store.Events               { return &eventsRepo{db: t.db} }
func (t *txStore) Memberships() store.Memberships     { return &membershipsRepo{db: t.db} }
func (t *txStore) Registrations() store.Registrations { return &registrationsRepo{db: t.db} }
