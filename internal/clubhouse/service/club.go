package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/policy"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/idx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

type ClubService struct {
	Store       store.Store
	EmailDomain string
	Now         func() time.Time
}

// ClubInput is the data accepted when a club is created or submitted.
type ClubInput struct {
	Name         string
	Description  string
	Department   string
	ContactEmail string
	ContactPhone string
	Established  *time.Time
}

func (in ClubInput) club(now time.Time) domain.Club {
	return domain.Club{
		ID:           idx.NewAt(now).String(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Department:   strings.TrimSpace(in.Department),
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		Established:  in.Established,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Create registers a club owned by actor.
func (s *ClubService) Create(ctx context.Context, actor domain.Identity, in ClubInput) (domain.Club, error) {
	log := slogx.FromContext(ctx)
	if err := policy.Authorize(actor, policy.CreateClub, policy.Resource{}); err != nil {
		log.Warn("club creation denied", slog.String("identity_id", actor.ID), slog.String("role", actor.Role.String()))
		return domain.Club{}, err
	}

	c := in.club(clockOrDefault(s.Now))
	c.CreatedBy = actor.ID
	if err := domain.ValidateClub(c, s.EmailDomain); err != nil {
		return domain.Club{}, err
	}
	if err := s.Store.Clubs().CreateClub(ctx, c); err != nil {
		log.Error("failed to create club", slog.Any("error", err))
		return domain.Club{}, storeErr(err)
	}

	log.Info("club created", slog.String("club_id", c.ID), slog.String("created_by", c.CreatedBy))
	return c, nil
}

// Submit records a publicly submitted club. It has no owner, so it cannot
// be edited until one is assigned, and it must carry a contact email in the
// institutional domain.
func (s *ClubService) Submit(ctx context.Context, in ClubInput) (domain.Club, error) {
	c := in.club(clockOrDefault(s.Now))
	if c.ContactEmail == "" {
		return domain.Club{}, domain.ErrRequiredField.WithDetail("contact_email is required")
	}
	if err := domain.ValidateClub(c, s.EmailDomain); err != nil {
		return domain.Club{}, err
	}
	if err := s.Store.Clubs().CreateClub(ctx, c); err != nil {
		return domain.Club{}, storeErr(err)
	}

	slogx.FromContext(ctx).Info("club submitted", slog.String("club_id", c.ID))
	return c, nil
}

func (s *ClubService) Get(ctx context.Context, id string) (domain.Club, error) {
	c, err := s.Store.Clubs().GetClub(ctx, id)
	return c, storeErr(err)
}

// List returns active clubs by name.
func (s *ClubService) List(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.Store.Clubs().ListClubs(ctx, store.ClubFilter{})
	return clubs, storeErr(err)
}

// ListOwned returns every club actor created, including deactivated ones.
func (s *ClubService) ListOwned(ctx context.Context, actor domain.Identity) ([]domain.Club, error) {
	if actor.Anonymous() {
		return nil, domain.ErrForbidden.WithDetail("owned clubs require an identity")
	}
	clubs, err := s.Store.Clubs().ListClubs(ctx, store.ClubFilter{CreatedBy: actor.ID, IncludeInactive: true})
	return clubs, storeErr(err)
}

// Update applies patch to a club actor owns. The merged club is validated
// as a whole.
func (s *ClubService) Update(ctx context.Context, actor domain.Identity, id string, patch domain.ClubPatch) (domain.Club, error) {
	var out domain.Club
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Clubs().GetClub(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.EditClub, policy.Resource{Club: &current}); err != nil {
			return err
		}

		next := patch.ApplyTo(current)
		next.Name = strings.TrimSpace(next.Name)
		next.ContactEmail = strings.TrimSpace(next.ContactEmail)
		if err := domain.ValidateClub(next, s.EmailDomain); err != nil {
			return err
		}
		next.UpdatedAt = clockOrDefault(s.Now)
		if err := tx.Clubs().UpdateClub(ctx, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return domain.Club{}, storeErr(err)
	}

	slogx.FromContext(ctx).Info("club updated", slog.String("club_id", id))
	return out, nil
}

// Deactivate soft-deletes a club. Its roster and events are left in place.
func (s *ClubService) Deactivate(ctx context.Context, actor domain.Identity, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Clubs().GetClub(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.DeactivateClub, policy.Resource{Club: &c}); err != nil {
			return err
		}
		return tx.Clubs().DeactivateClub(ctx, id, clockOrDefault(s.Now))
	})
	if err != nil {
		return storeErr(err)
	}

	slogx.FromContext(ctx).Info("club deactivated", slog.String("club_id", id), slog.String("by", actor.ID))
	return nil
}
