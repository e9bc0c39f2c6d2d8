package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type clubsRepo struct {
	db dbtx
}

const clubColumns = `id, name, description, department, contact_email, contact_phone, established, created_by, is_active, created_at, updated_at`

func scanClub(row scanner) (domain.Club, error) {
	var (
		c           domain.Club
		established sql.NullTime
		createdBy   sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Department, &c.ContactEmail, &c.ContactPhone,
		&established, &createdBy, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Club{}, mapNotFound(err)
	}
	c.Established = mapNullTimePtr(established)
	c.CreatedBy = mapNullString(createdBy)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func (r *clubsRepo) GetClub(ctx context.Context, id string) (domain.Club, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = ?`, id)
	return scanClub(row)
}

func (r *clubsRepo) ListClubs(ctx context.Context, f store.ClubFilter) ([]domain.Club, error) {
	var (
		where []string
		args  []any
	)
	if !f.IncludeInactive {
		where = append(where, "is_active = 1")
	}
	if f.CreatedBy != "" {
		where = append(where, "created_by = ?")
		args = append(args, f.CreatedBy)
	}
	query := `SELECT ` + clubColumns + ` FROM clubs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clubs (id, name, description, department, contact_email, contact_phone,
		                   established, created_by, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.Department, c.ContactEmail, c.ContactPhone,
		mapOptionalTime(c.Established), mapStringNull(c.CreatedBy), c.IsActive,
		c.CreatedAt.UTC(), c.UpdatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *clubsRepo) UpdateClub(ctx context.Context, c domain.Club) error {
	return requireOne(r.db.ExecContext(ctx, `
		UPDATE clubs
		SET name = ?, description = ?, department = ?, contact_email = ?, contact_phone = ?,
		    established = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Description, c.Department, c.ContactEmail, c.ContactPhone,
		mapOptionalTime(c.Established), c.UpdatedAt.UTC(), c.ID,
	))
}

func (r *clubsRepo) DeactivateClub(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.db.ExecContext(ctx,
		`UPDATE clubs SET is_active = 0, updated_at = ? WHERE id = ?`, at.UTC(), id))
}
