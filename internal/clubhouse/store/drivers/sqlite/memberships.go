package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
)

type membershipsRepo struct {
	db dbtx
}

const membershipColumns = `id, club_id, identity_id, position, joined_at, is_active, ended_at`

func scanMembership(row scanner) (domain.Membership, error) {
	var (
		m        domain.Membership
		position string
		endedAt  sql.NullTime
	)
	if err := row.Scan(&m.ID, &m.ClubID, &m.IdentityID, &position, &m.JoinedAt, &m.IsActive, &endedAt); err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	p, err := domain.ParsePosition(position)
	if err != nil {
		return domain.Membership{}, err
	}
	m.Position = p
	m.JoinedAt = m.JoinedAt.UTC()
	m.EndedAt = mapNullTimePtr(endedAt)
	return m, nil
}

func (r *membershipsRepo) GetMembership(ctx context.Context, id string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE id = ?`, id)
	return scanMembership(row)
}

func (r *membershipsRepo) ListMemberships(ctx context.Context, clubID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+membershipColumns+` FROM memberships
		WHERE club_id = ? AND is_active = 1
		ORDER BY joined_at, id`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertMembershipIfAbsent relies on the partial unique index over active
// (club_id, identity_id) pairs.
func (r *membershipsRepo) InsertMembershipIfAbsent(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (id, club_id, identity_id, position, joined_at, is_active)
		VALUES (?, ?, ?, ?, ?, 1)`,
		m.ID, m.ClubID, m.IdentityID, m.Position.String(), m.JoinedAt.UTC(),
	)
	return mapConflict(err)
}

func (r *membershipsRepo) DeactivateMembership(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.db.ExecContext(ctx,
		`UPDATE memberships SET is_active = 0, ended_at = ? WHERE id = ? AND is_active = 1`, at.UTC(), id))
}

func (r *membershipsRepo) UpdateMembershipPosition(ctx context.Context, id string, p domain.Position) error {
	return requireOne(r.db.ExecContext(ctx,
		`UPDATE memberships SET position = ? WHERE id = ? AND is_active = 1`, p.String(), id))
}
