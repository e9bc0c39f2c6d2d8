package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type clubsRepo struct {
	q querier
}

const clubColumns = `id, name, description, department, contact_email, contact_phone, established, created_by, is_active, created_at, updated_at`

func scanClub(row interface{ Scan(...any) error }) (domain.Club, error) {
	var (
		c         domain.Club
		createdBy *string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Department, &c.ContactEmail, &c.ContactPhone,
		&c.Established, &createdBy, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Club{}, mapNotFound(err)
	}
	c.Established = utcPtr(c.Established)
	c.CreatedBy = derefString(createdBy)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func (r *clubsRepo) GetClub(ctx context.Context, id string) (domain.Club, error) {
	return scanClub(r.q.QueryRow(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = $1`, id))
}

func (r *clubsRepo) ListClubs(ctx context.Context, f store.ClubFilter) ([]domain.Club, error) {
	var (
		where []string
		args  []any
	)
	if !f.IncludeInactive {
		where = append(where, "is_active")
	}
	if f.CreatedBy != "" {
		args = append(args, f.CreatedBy)
		where = append(where, fmt.Sprintf("created_by = $%d", len(args)))
	}
	query := `SELECT ` + clubColumns + ` FROM clubs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clubsRepo) CreateClub(ctx context.Context, c domain.Club) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO clubs (id, name, description, department, contact_email, contact_phone,
		                   established, created_by, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Description, c.Department, c.ContactEmail, c.ContactPhone,
		c.Established, nullIfEmpty(c.CreatedBy), c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *clubsRepo) UpdateClub(ctx context.Context, c domain.Club) error {
	return requireOne(r.q.Exec(ctx, `
		UPDATE clubs
		SET name = $1, description = $2, department = $3, contact_email = $4, contact_phone = $5,
		    established = $6, updated_at = $7
		WHERE id = $8`,
		c.Name, c.Description, c.Department, c.ContactEmail, c.ContactPhone, c.Established, c.UpdatedAt, c.ID,
	))
}

func (r *clubsRepo) DeactivateClub(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.q.Exec(ctx, `UPDATE clubs SET is_active = FALSE, updated_at = $1 WHERE id = $2`, at, id))
}
