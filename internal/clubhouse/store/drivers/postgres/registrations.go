package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type registrationsRepo struct {
	q querier
}

const registrationColumns = `id, event_id, identity_id, status, registered_at, cancelled_at`

func scanRegistration(row interface{ Scan(...any) error }) (domain.Registration, error) {
	var (
		reg    domain.Registration
		status string
	)
	if err := row.Scan(&reg.ID, &reg.EventID, &reg.IdentityID, &status, &reg.RegisteredAt, &reg.CancelledAt); err != nil {
		return domain.Registration{}, mapNotFound(err)
	}
	st, err := domain.ParseRegistrationStatus(status)
	if err != nil {
		return domain.Registration{}, err
	}
	reg.Status = st
	reg.RegisteredAt = reg.RegisteredAt.UTC()
	reg.CancelledAt = utcPtr(reg.CancelledAt)
	return reg, nil
}

func (r *registrationsRepo) GetRegistration(ctx context.Context, id string) (domain.Registration, error) {
	return scanRegistration(r.q.QueryRow(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = $1`, id))
}

func (r *registrationsRepo) ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+registrationColumns+` FROM registrations
		WHERE event_id = $1 AND status = 'confirmed'
		ORDER BY registered_at, id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *registrationsRepo) CountActiveRegistrations(ctx context.Context, eventID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = 'confirmed'`, eventID).Scan(&n)
	return n, err
}

func (r *registrationsRepo) FindActiveRegistration(ctx context.Context, eventID, identityID string) (domain.Registration, error) {
	return scanRegistration(r.q.QueryRow(ctx, `
		SELECT `+registrationColumns+` FROM registrations
		WHERE event_id = $1 AND identity_id = $2 AND status = 'confirmed'`, eventID, identityID))
}

// InsertRegistrationIfCapacity locks the event row for the duration of the
// count and insert, and takes the capacity and active flag from the locked
// row. Callers racing on the same event queue on the lock; other events are
// unaffected. Inside an outer transaction this runs in a savepoint.
func (r *registrationsRepo) InsertRegistrationIfCapacity(ctx context.Context, reg domain.Registration) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var (
		capacity *int
		active   bool
	)
	err = tx.QueryRow(ctx,
		`SELECT max_participants, is_active FROM events WHERE id = $1 FOR UPDATE`, reg.EventID,
	).Scan(&capacity, &active)
	if err != nil {
		return mapNotFound(err)
	}
	if !active {
		return store.ErrInactive
	}

	if capacity != nil {
		var n int
		err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = 'confirmed'`, reg.EventID).Scan(&n)
		if err != nil {
			return err
		}
		if n >= *capacity {
			return store.ErrCapacityReached
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO registrations (id, event_id, identity_id, status, registered_at)
		VALUES ($1, $2, $3, 'confirmed', $4)`,
		reg.ID, reg.EventID, reg.IdentityID, reg.RegisteredAt,
	)
	if err != nil {
		return mapConflict(err)
	}
	return tx.Commit(ctx)
}

func (r *registrationsRepo) CancelRegistration(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.q.Exec(ctx, `
		UPDATE registrations SET status = 'cancelled', cancelled_at = $1
		WHERE id = $2 AND status = 'confirmed'`, at, id))
}
