package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type membershipsRepo struct {
	q querier
}

const membershipColumns = `id, club_id, identity_id, position, joined_at, is_active, ended_at`

func scanMembership(row interface{ Scan(...any) error }) (domain.Membership, error) {
	var (
		m        domain.Membership
		position string
	)
	if err := row.Scan(&m.ID, &m.ClubID, &m.IdentityID, &position, &m.JoinedAt, &m.IsActive, &m.EndedAt); err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	p, err := domain.ParsePosition(position)
	if err != nil {
		return domain.Membership{}, err
	}
	m.Position = p
	m.JoinedAt = m.JoinedAt.UTC()
	m.EndedAt = utcPtr(m.EndedAt)
	return m, nil
}

func (r *membershipsRepo) GetMembership(ctx context.Context, id string) (domain.Membership, error) {
	return scanMembership(r.q.QueryRow(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id))
}

func (r *membershipsRepo) ListMemberships(ctx context.Context, clubID string) ([]domain.Membership, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+membershipColumns+` FROM memberships
		WHERE club_id = $1 AND is_active
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

func (r *membershipsRepo) InsertMembershipIfAbsent(ctx context.Context, m domain.Membership) error {
	tag, err := r.q.Exec(ctx, `
		INSERT INTO memberships (id, club_id, identity_id, position, joined_at, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (club_id, identity_id) WHERE is_active DO NOTHING`,
		m.ID, m.ClubID, m.IdentityID, m.Position.String(), m.JoinedAt,
	)
	if err != nil {
		return mapConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *membershipsRepo) DeactivateMembership(ctx context.Context, id string, at time.Time) error {
	return requireOne(r.q.Exec(ctx,
		`UPDATE memberships SET is_active = FALSE, ended_at = $1 WHERE id = $2 AND is_active`, at, id))
}

func (r *membershipsRepo) UpdateMembershipPosition(ctx context.Context, id string, p domain.Position) error {
	return requireOne(r.q.Exec(ctx,
		`UPDATE memberships SET position = $1 WHERE id = $2 AND is_active`, p.String(), id))
}
