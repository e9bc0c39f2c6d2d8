package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
)

type identitiesRepo struct {
	db dbtx
}

const identityColumns = `id, email, display_name, role, department, year_of_study, created_at, updated_at`

func scanIdentity(row scanner) (domain.Identity, error) {
	var (
		i    domain.Identity
		role string
		year sql.NullInt64
	)
	if err := row.Scan(&i.ID, &i.Email, &i.DisplayName, &role, &i.Department, &year, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return domain.Identity{}, err
	}
	i.Role = r
	i.YearOfStudy = mapNullIntPtr(year)
	i.CreatedAt = i.CreatedAt.UTC()
	i.UpdatedAt = i.UpdatedAt.UTC()
	return i, nil
}

func (r *identitiesRepo) GetIdentityByID(ctx context.Context, id string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = ?`, id)
	return scanIdentity(row)
}

func (r *identitiesRepo) FindIdentityByEmail(ctx context.Context, email string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+identityColumns+` FROM identities WHERE email = ?`, email)
	return scanIdentity(row)
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, i domain.Identity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identities (id, email, display_name, role, department, year_of_study, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.Email, i.DisplayName, i.Role.String(), i.Department, mapOptionalInt(i.YearOfStudy),
		i.CreatedAt.UTC(), i.UpdatedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *identitiesRepo) UpdateProfile(ctx context.Context, i domain.Identity) error {
	return requireOne(r.db.ExecContext(ctx, `
		UPDATE identities
		SET display_name = ?, department = ?, year_of_study = ?, updated_at = ?
		WHERE id = ?`,
		i.DisplayName, i.Department, mapOptionalInt(i.YearOfStudy), i.UpdatedAt.UTC(), i.ID,
	))
}
