package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type eventsRepo struct {
	q         querier
	forUpdate bool
}

const eventColumns = `id, title, description, event_date, location, max_participants,
	registration_deadline, club_id, created_by, is_active, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (domain.Event, error) {
	var (
		e      domain.Event
		clubID *string
	)
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location, &e.MaxParticipants,
		&e.RegistrationDeadline, &clubID, &e.CreatedBy, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	e.EventDate = e.EventDate.UTC()
	e.RegistrationDeadline = utcPtr(e.RegistrationDeadline)
	e.ClubID = derefString(clubID)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}

func (r *eventsRepo) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}
	return scanEvent(r.q.QueryRow(ctx, query, id))
}

func (r *eventsRepo) ListEvents(ctx context.Context, f store.EventFilter) ([]domain.Event, error) {
	var (
		where []string
		args  []any
	)
	if !f.IncludeInactive {
		where = append(where, "is_active")
	}
	if f.ClubID != "" {
		args = append(args, f.ClubID)
		where = append(where, fmt.Sprintf("club_id = $%d", len(args)))
	}
	if f.CreatedBy != "" {
		args = append(args, f.CreatedBy)
		where = append(where, fmt.Sprintf("created_by = $%d", len(args)))
	}
	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY event_date, id`

	rows, err := r.q.Query(ctx, query, args...)
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
	_, err := r.q.Exec(ctx, `
		INSERT INTO events (id, title, description, event_date, location, max_participants,
		                    registration_deadline, club_id, created_by, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.Title, e.Description, e.EventDate, e.Location, e.MaxParticipants,
		e.RegistrationDeadline, nullIfEmpty(e.ClubID), e.CreatedBy, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	return requireOne(r.q.Exec(ctx, `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, location = $4, max_participants = $5,
		    registration_deadline = $6, updated_at = $7
		WHERE id = $8`,
		e.Title, e.Description, e.EventDate, e.Location, e.MaxParticipants,
		e.RegistrationDeadline, e.UpdatedAt, e.ID,
	))
}

func (r *eventsRepo) DeactivateEvent(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.q.Exec(ctx, `UPDATE events SET is_active = FALSE, updated_at = $1 WHERE id = $2`, at, id))
}
