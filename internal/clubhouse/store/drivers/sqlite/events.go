package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type eventsRepo struct {
	db dbtx
}

const eventColumns = `id, title, description, event_date, location, max_participants,
	registration_deadline, club_id, created_by, is_active, created_at, updated_at`

func scanEvent(row scanner) (domain.Event, error) {
	var (
		e        domain.Event
		maxP     sql.NullInt64
		deadline sql.NullTime
		clubID   sql.NullString
	)
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location, &maxP,
		&deadline, &clubID, &e.CreatedBy, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	e.EventDate = e.EventDate.UTC()
	e.MaxParticipants = mapNullIntPtr(maxP)
	e.RegistrationDeadline = mapNullTimePtr(deadline)
	e.ClubID = mapNullString(clubID)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}

func (r *eventsRepo) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

func (r *eventsRepo) ListEvents(ctx context.Context, f store.EventFilter) ([]domain.Event, error) {
	var (
		where []string
		args  []any
	)
	if !f.IncludeInactive {
		where = append(where, "is_active = 1")
	}
	if f.ClubID != "" {
		where = append(where, "club_id = ?")
		args = append(args, f.ClubID)
	}
	if f.CreatedBy != "" {
		where = append(where, "created_by = ?")
		args = append(args, f.CreatedBy)
	}
	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY event_date, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, title, description, event_date, location, max_participants,
		                    registration_deadline, club_id, created_by, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, e.EventDate.UTC(), e.Location, mapOptionalInt(e.MaxParticipants),
		mapOptionalTime(e.RegistrationDeadline), mapStringNull(e.ClubID), e.CreatedBy, e.IsActive,
		e.CreatedAt.UTC(), e.UpdatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	return requireOne(r.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, event_date = ?, location = ?, max_participants = ?,
		    registration_deadline = ?, updated_at = ?
		WHERE id = ?`,
		e.Title, e.Description, e.EventDate.UTC(), e.Location, mapOptionalInt(e.MaxParticipants),
		mapOptionalTime(e.RegistrationDeadline), e.UpdatedAt.UTC(), e.ID,
	))
}

func (r *eventsRepo) DeactivateEvent(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.db.ExecContext(ctx,
		`UPDATE events SET is_active = 0, updated_at = ? WHERE id = ?`, at.UTC(), id))
}
