package postgres

import (
	"context"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
)

type identitiesRepo struct {
	q querier
}

const identityColumns = `id, email, display_name, role, department, year_of_study, created_at, updated_at`

func scanIdentity(row interface{ Scan(...any) error }) (domain.Identity, error) {
	var (
		i    domain.Identity
		role string
	)
	if err := row.Scan(&i.ID, &i.Email, &i.DisplayName, &role, &i.Department, &i.YearOfStudy, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return domain.Identity{}, err
	}
	i.Role = r
	i.CreatedAt = i.CreatedAt.UTC()
	i.UpdatedAt = i.UpdatedAt.UTC()
	return i, nil
}

func (r *identitiesRepo) GetIdentityByID(ctx context.Context, id string) (domain.Identity, error) {
	return scanIdentity(r.q.QueryRow(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = $1`, id))
}

func (r *identitiesRepo) FindIdentityByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return scanIdentity(r.q.QueryRow(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE lower(email) = lower($1)`, email))
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, i domain.Identity) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO identities (id, email, display_name, role, department, year_of_study, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		i.ID, i.Email, i.DisplayName, i.Role.String(), i.Department, i.YearOfStudy, i.CreatedAt, i.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *identitiesRepo) UpdateProfile(ctx context.Context, i domain.Identity) error {
	return requireOne(r.q.Exec(ctx, `
		UPDATE identities SET display_name = $1, department = $2, year_of_study = $3, updated_at = $4
		WHERE id = $5`,
		i.DisplayName, i.Department, i.YearOfStudy, i.UpdatedAt, i.ID,
	))
}
