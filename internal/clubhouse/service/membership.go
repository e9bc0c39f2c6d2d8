package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/policy"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/idx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

// MembershipService maintains club officer rosters. Memberships are only
// ever created by a club owner adding someone; there is no self-service
// joining.
type MembershipService struct {
	Store store.Store
	Now   func() time.Time
}

// Member is a roster entry with the identity it refers to.
type Member struct {
	domain.Membership
	Identity domain.Identity
}

// AddMember grants position in clubID to the identity registered under
// email.
func (s *MembershipService) AddMember(
	ctx context.Context,
	actor domain.Identity,
	clubID, email string,
	position domain.Position,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	club, err := s.Store.Clubs().GetClub(ctx, clubID)
	if err != nil {
		return domain.Membership{}, storeErr(err)
	}
	if err := policy.Authorize(actor, policy.ManageMembership, policy.Resource{Club: &club}); err != nil {
		log.Warn("membership change denied", slog.String("club_id", clubID), slog.String("identity_id", actor.ID))
		return domain.Membership{}, err
	}

	who, err := s.Store.Identities().FindIdentityByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, domain.ErrIdentityNotFound
		}
		return domain.Membership{}, storeErr(err)
	}
	if !position.Valid() {
		return domain.Membership{}, domain.ErrInvalidPosition
	}

	now := clockOrDefault(s.Now)
	m := domain.Membership{
		ID:         idx.NewAt(now).String(),
		ClubID:     club.ID,
		IdentityID: who.ID,
		Position:   position,
		JoinedAt:   now,
		IsActive:   true,
	}
	if err := s.Store.Memberships().InsertMembershipIfAbsent(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Membership{}, domain.ErrDuplicateMembership
		}
		log.Error("failed to insert membership", slog.Any("error", err))
		return domain.Membership{}, storeErr(err)
	}

	log.Info("member added",
		slog.String("club_id", m.ClubID),
		slog.String("member_id", m.IdentityID),
		slog.String("position", m.Position.String()),
	)
	return m, nil
}

// guard loads an active membership and checks actor manages its club.
func (s *MembershipService) guard(ctx context.Context, tx store.Tx, actor domain.Identity, membershipID string) (domain.Membership, error) {
	m, err := tx.Memberships().GetMembership(ctx, membershipID)
	if err != nil {
		return domain.Membership{}, err
	}
	club, err := tx.Clubs().GetClub(ctx, m.ClubID)
	if err != nil {
		return domain.Membership{}, err
	}
	if err := policy.Authorize(actor, policy.ManageMembership, policy.Resource{Club: &club}); err != nil {
		return domain.Membership{}, err
	}
	if !m.IsActive {
		return domain.Membership{}, domain.ErrNotFound.WithDetail("membership is no longer active")
	}
	return m, nil
}

// RemoveMember ends a membership. The row is kept, deactivated.
func (s *MembershipService) RemoveMember(ctx context.Context, actor domain.Identity, membershipID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.guard(ctx, tx, actor, membershipID); err != nil {
			return err
		}
		return tx.Memberships().DeactivateMembership(ctx, membershipID, clockOrDefault(s.Now))
	})
	if err != nil {
		return storeErr(err)
	}

	slogx.FromContext(ctx).Info("member removed", slog.String("membership_id", membershipID))
	return nil
}

func (s *MembershipService) ChangePosition(
	ctx context.Context,
	actor domain.Identity,
	membershipID string,
	position domain.Position,
) (domain.Membership, error) {
	if !position.Valid() {
		return domain.Membership{}, domain.ErrInvalidPosition
	}

	var out domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := s.guard(ctx, tx, actor, membershipID)
		if err != nil {
			return err
		}
		if err := tx.Memberships().UpdateMembershipPosition(ctx, membershipID, position); err != nil {
			return err
		}
		m.Position = position
		out = m
		return nil
	})
	if err != nil {
		return domain.Membership{}, storeErr(err)
	}
	return out, nil
}

// ListMembers returns the active roster of clubID.
func (s *MembershipService) ListMembers(ctx context.Context, clubID string) ([]Member, error) {
	if _, err := s.Store.Clubs().GetClub(ctx, clubID); err != nil {
		return nil, storeErr(err)
	}
	ms, err := s.Store.Memberships().ListMemberships(ctx, clubID)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]Member, 0, len(ms))
	for _, m := range ms {
		who, err := s.Store.Identities().GetIdentityByID(ctx, m.IdentityID)
		if err != nil {
			return nil, storeErr(err)
		}
		out = append(out, Member{Membership: m, Identity: who})
	}
	return out, nil
}
