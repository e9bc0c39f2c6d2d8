package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type registrationsRepo struct {
	db dbtx
}

const registrationColumns = `id, event_id, identity_id, status, registered_at, cancelled_at`

func scanRegistration(row scanner) (domain.Registration, error) {
	var (
		reg         domain.Registration
		status      string
		cancelledAt sql.NullTime
	)
	if err := row.Scan(&reg.ID, &reg.EventID, &reg.IdentityID, &status, &reg.RegisteredAt, &cancelledAt); err != nil {
		return domain.Registration{}, mapNotFound(err)
	}
	st, err := domain.ParseRegistrationStatus(status)
	if err != nil {
		return domain.Registration{}, err
	}
	reg.Status = st
	reg.RegisteredAt = reg.RegisteredAt.UTC()
	reg.CancelledAt = mapNullTimePtr(cancelledAt)
	return reg, nil
}

func (r *registrationsRepo) GetRegistration(ctx context.Context, id string) (domain.Registration, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = ?`, id)
	return scanRegistration(row)
}

func (r *registrationsRepo) ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+registrationColumns+` FROM registrations
		WHERE event_id = ? AND status = 'confirmed'
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
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = ? AND status = 'confirmed'`, eventID).Scan(&n)
	return n, err
}

func (r *registrationsRepo) FindActiveRegistration(ctx context.Context, eventID, identityID string) (domain.Registration, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+registrationColumns+` FROM registrations
		WHERE event_id = ? AND identity_id = ? AND status = 'confirmed'`, eventID, identityID)
	return scanRegistration(row)
}

// InsertRegistrationIfCapacity folds the event's active flag, its current
// max_participants and the confirmed count into the insert, so all of them
// are evaluated under the same write lock as the new row.
func (r *registrationsRepo) InsertRegistrationIfCapacity(ctx context.Context, reg domain.Registration) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO registrations (id, event_id, identity_id, status, registered_at)
		SELECT ?1, ?2, ?3, 'confirmed', ?4
		FROM events e
		WHERE e.id = ?2
		  AND e.is_active = 1
		  AND (e.max_participants IS NULL
		   OR (SELECT COUNT(*) FROM registrations WHERE event_id = ?2 AND status = 'confirmed') < e.max_participants)`,
		reg.ID, reg.EventID, reg.IdentityID, reg.RegisteredAt.UTC(),
	)
	if err != nil {
		return mapConflict(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	return r.refusal(ctx, reg.EventID)
}

// refusal reports why a conditional insert affected no rows. The decision
// itself was already made atomically; this only names it.
func (r *registrationsRepo) refusal(ctx context.Context, eventID string) error {
	var active bool
	err := r.db.QueryRowContext(ctx, `SELECT is_active FROM events WHERE id = ?`, eventID).Scan(&active)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case err != nil:
		return err
	case !active:
		return store.ErrInactive
	}
	return store.ErrCapacityReached
}

func (r *registrationsRepo) CancelRegistration(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.db.ExecContext(ctx, `
		UPDATE registrations SET status = 'cancelled', cancelled_at = ?
		WHERE id = ? AND status = 'confirmed'`, at.UTC(), id))
}
