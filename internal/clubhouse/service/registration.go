package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/policy"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/idx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

// RegistrationService accepts and cancels event registrations. Capacity is
// enforced by the store's conditional insert, never by a count held here.
type RegistrationService struct {
	Store store.Store
	Now   func() time.Time
}

// Register signs actor up for eventID.
func (s *RegistrationService) Register(ctx context.Context, actor domain.Identity, eventID string) (domain.Registration, error) {
	e, err := s.Store.Events().GetEvent(ctx, eventID)
	if err != nil {
		return domain.Registration{}, storeErr(err)
	}

	now := clockOrDefault(s.Now)
	if err := policy.Authorize(actor, policy.Register, policy.Resource{Event: &e, Now: now}); err != nil {
		slogx.FromContext(ctx).Warn("registration denied",
			slog.String("event_id", eventID),
			slog.String("identity_id", actor.ID),
		)
		return domain.Registration{}, err
	}
	return s.admit(ctx, e, actor, now)
}

// Admit runs the acceptance checks for who on e and inserts the
// registration. It assumes the caller was already authorized.
func (s *RegistrationService) Admit(ctx context.Context, e domain.Event, who domain.Identity) (domain.Registration, error) {
	return s.admit(ctx, e, who, clockOrDefault(s.Now))
}

func (s *RegistrationService) admit(ctx context.Context, e domain.Event, who domain.Identity, now time.Time) (domain.Registration, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", e.ID), slog.String("identity_id", who.ID))
	regs := s.Store.Registrations()

	// 1. Soft-deleted events take no registrations.
	if !e.IsActive {
		return domain.Registration{}, domain.ErrEventInactive
	}

	// 2. Deadline, when set.
	if e.DeadlinePassed(now) {
		return domain.Registration{}, domain.ErrRegistrationClosed
	}

	// 3. Only before the event starts.
	if domain.Classify(e, now) != domain.StageUpcoming {
		return domain.Registration{}, domain.ErrEventNotUpcoming
	}

	// 4. One active registration per identity.
	_, err := regs.FindActiveRegistration(ctx, e.ID, who.ID)
	switch {
	case err == nil:
		return domain.Registration{}, domain.ErrAlreadyRegistered
	case !errors.Is(err, store.ErrNotFound):
		return domain.Registration{}, storeErr(err)
	}

	// 5. Capacity pre-check. Stale by the time we insert; the insert
	// re-reads the event and re-checks atomically.
	if e.MaxParticipants != nil {
		active, err := regs.CountActiveRegistrations(ctx, e.ID)
		if err != nil {
			return domain.Registration{}, storeErr(err)
		}
		if e.Full(active) {
			return domain.Registration{}, domain.ErrCapacityExceeded
		}
	}

	r := domain.Registration{
		ID:           idx.NewAt(now).String(),
		EventID:      e.ID,
		IdentityID:   who.ID,
		Status:       domain.RegistrationConfirmed,
		RegisteredAt: now,
	}
	if err := regs.InsertRegistrationIfCapacity(ctx, r); err != nil {
		switch {
		case errors.Is(err, store.ErrInactive):
			log.Info("event deactivated during registration")
			return domain.Registration{}, domain.ErrEventInactive.Wrap(domain.ErrContended)
		case errors.Is(err, store.ErrCapacityReached):
			log.Info("registration lost capacity race")
			return domain.Registration{}, domain.ErrCapacityExceeded.Wrap(domain.ErrContended)
		case errors.Is(err, store.ErrAlreadyExists):
			log.Info("registration lost duplicate race")
			return domain.Registration{}, domain.ErrAlreadyRegistered.Wrap(domain.ErrContended)
		}
		log.Error("failed to insert registration", slog.Any("error", err))
		return domain.Registration{}, storeErr(err)
	}

	log.Info("registration confirmed", slog.String("registration_id", r.ID))
	return r, nil
}

// Cancel cancels a confirmed registration. The registrant and the event
// owner may cancel.
func (s *RegistrationService) Cancel(ctx context.Context, actor domain.Identity, registrationID string) error {
	r, err := s.Store.Registrations().GetRegistration(ctx, registrationID)
	if err != nil {
		return storeErr(err)
	}
	e, err := s.Store.Events().GetEvent(ctx, r.EventID)
	if err != nil {
		return storeErr(err)
	}
	if actor.Anonymous() || (r.IdentityID != actor.ID && !e.OwnedBy(actor.ID)) {
		return domain.ErrForbidden.WithDetail("only the registrant or the event owner may cancel")
	}
	if !r.Active() {
		return domain.ErrNotFound.WithDetail("registration is already cancelled")
	}

	if err := s.Store.Registrations().CancelRegistration(ctx, registrationID, clockOrDefault(s.Now)); err != nil {
		return storeErr(err)
	}

	slogx.FromContext(ctx).Info("registration cancelled",
		slog.String("registration_id", registrationID),
		slog.String("event_id", r.EventID),
		slog.String("by", actor.ID),
	)
	return nil
}

// ListForEvent returns confirmed registrations. Only the event owner sees
// the attendee list.
func (s *RegistrationService) ListForEvent(ctx context.Context, actor domain.Identity, eventID string) ([]domain.Registration, error) {
	e, err := s.Store.Events().GetEvent(ctx, eventID)
	if err != nil {
		return nil, storeErr(err)
	}
	if err := policy.Authorize(actor, policy.EditEvent, policy.Resource{Event: &e}); err != nil {
		return nil, err
	}
	regs, err := s.Store.Registrations().ListRegistrations(ctx, eventID)
	return regs, storeErr(err)
}

// Count returns the number of confirmed registrations for eventID.
func (s *RegistrationService) Count(ctx context.Context, eventID string) (int, error) {
	if _, err := s.Store.Events().GetEvent(ctx, eventID); err != nil {
		return 0, storeErr(err)
	}
	n, err := s.Store.Registrations().CountActiveRegistrations(ctx, eventID)
	return n, storeErr(err)
}
