package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/idx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

type IdentityService struct {
	Store       store.Store
	EmailDomain string
	Now         func() time.Time
}

// SignUpInput carries the profile captured at first sign-up. ID is the
// subject issued by the identity provider; when empty a new id is minted.
type SignUpInput struct {
	ID          string
	Email       string
	DisplayName string
	Role        domain.Role
	Department  string
	YearOfStudy *int
}

// SignUp creates the Identity for a first successful sign-up.
func (s *IdentityService) SignUp(ctx context.Context, in SignUpInput) (domain.Identity, error) {
	log := slogx.FromContext(ctx)
	now := clockOrDefault(s.Now)

	id := in.ID
	if id == "" {
		id = idx.New().String()
	}
	ident := domain.Identity{
		ID:          id,
		Email:       strings.TrimSpace(in.Email),
		DisplayName: strings.TrimSpace(in.DisplayName),
		Role:        in.Role,
		Department:  strings.TrimSpace(in.Department),
		YearOfStudy: in.YearOfStudy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := domain.ValidateIdentity(ident, s.EmailDomain); err != nil {
		return domain.Identity{}, err
	}

	if err := s.Store.Identities().CreateIdentity(ctx, ident); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("sign-up for existing identity", slog.String("identity_id", id))
			return domain.Identity{}, domain.ErrIdentityExists
		}
		log.Error("failed to create identity", slog.Any("error", err))
		return domain.Identity{}, storeErr(err)
	}

	log.Info("identity signed up",
		slog.String("identity_id", ident.ID),
		slog.String("role", ident.Role.String()),
	)
	return ident, nil
}

func (s *IdentityService) Get(ctx context.Context, id string) (domain.Identity, error) {
	ident, err := s.Store.Identities().GetIdentityByID(ctx, id)
	return ident, storeErr(err)
}

// UpdateProfile edits display name, department and year of study. Email
// and role are fixed at sign-up.
func (s *IdentityService) UpdateProfile(ctx context.Context, actor domain.Identity, patch domain.ProfilePatch) (domain.Identity, error) {
	if actor.Anonymous() {
		return domain.Identity{}, domain.ErrForbidden
	}

	var out domain.Identity
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Identities().GetIdentityByID(ctx, actor.ID)
		if err != nil {
			return err
		}
		next := patch.ApplyTo(current)
		next.DisplayName = strings.TrimSpace(next.DisplayName)
		// Email is fixed at sign-up and is not re-checked against the domain.
		if err := domain.ValidateIdentity(next, ""); err != nil {
			return err
		}
		next.UpdatedAt = clockOrDefault(s.Now)
		if err := tx.Identities().UpdateProfile(ctx, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return domain.Identity{}, storeErr(err)
	}

	slogx.FromContext(ctx).Debug("profile updated", slog.String("identity_id", out.ID))
	return out, nil
}
