package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/policy"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/idx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

type EventService struct {
	Store store.Store
	Now   func() time.Time
}

type EventInput struct {
	Title                string
	Description          string
	EventDate            time.Time
	Location             string
	MaxParticipants      *int
	RegistrationDeadline *time.Time
	ClubID               string
}

// Listing is an event together with its stage at listing time. Stage is
// zero for inactive events, which are never classified.
type Listing struct {
	domain.Event
	Stage domain.Stage
}

// EventQuery filters List. Zero values match everything.
type EventQuery struct {
	ClubID    string
	CreatedBy string
	Stage     domain.Stage
}

// Create publishes an event owned by actor. Linking it to a club also
// requires being allowed to edit that club.
func (s *EventService) Create(ctx context.Context, actor domain.Identity, in EventInput) (domain.Event, error) {
	log := slogx.FromContext(ctx)
	if err := policy.Authorize(actor, policy.CreateEvent, policy.Resource{}); err != nil {
		log.Warn("event creation denied", slog.String("identity_id", actor.ID), slog.String("role", actor.Role.String()))
		return domain.Event{}, err
	}

	if in.ClubID != "" {
		club, err := s.Store.Clubs().GetClub(ctx, in.ClubID)
		if err != nil {
			return domain.Event{}, storeErr(err)
		}
		if !club.IsActive {
			return domain.Event{}, domain.ErrNotFound.WithDetail("club is no longer active")
		}
		if err := policy.Authorize(actor, policy.EditClub, policy.Resource{Club: &club}); err != nil {
			return domain.Event{}, err
		}
	}

	now := clockOrDefault(s.Now)
	e := domain.Event{
		ID:                   idx.NewAt(now).String(),
		Title:                strings.TrimSpace(in.Title),
		Description:          in.Description,
		EventDate:            in.EventDate.UTC(),
		Location:             strings.TrimSpace(in.Location),
		MaxParticipants:      in.MaxParticipants,
		RegistrationDeadline: utcPtr(in.RegistrationDeadline),
		ClubID:               in.ClubID,
		CreatedBy:            actor.ID,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := domain.ValidateEvent(e); err != nil {
		return domain.Event{}, err
	}
	if err := s.Store.Events().CreateEvent(ctx, e); err != nil {
		log.Error("failed to create event", slog.Any("error", err))
		return domain.Event{}, storeErr(err)
	}

	log.Info("event created",
		slog.String("event_id", e.ID),
		slog.String("club_id", e.ClubID),
		slog.Time("event_date", e.EventDate),
	)
	return e, nil
}

func (s *EventService) Get(ctx context.Context, id string) (Listing, error) {
	e, err := s.Store.Events().GetEvent(ctx, id)
	if err != nil {
		return Listing{}, storeErr(err)
	}
	return s.classify(e, clockOrDefault(s.Now)), nil
}

// List returns active events ordered by date, each with its current stage.
func (s *EventService) List(ctx context.Context, q EventQuery) ([]Listing, error) {
	events, err := s.Store.Events().ListEvents(ctx, store.EventFilter{ClubID: q.ClubID, CreatedBy: q.CreatedBy})
	if err != nil {
		return nil, storeErr(err)
	}

	now := clockOrDefault(s.Now)
	out := make([]Listing, 0, len(events))
	for _, e := range events {
		l := s.classify(e, now)
		if q.Stage != 0 && l.Stage != q.Stage {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// ListOwned returns every event actor created, including deactivated ones.
func (s *EventService) ListOwned(ctx context.Context, actor domain.Identity) ([]Listing, error) {
	if actor.Anonymous() {
		return nil, domain.ErrForbidden.WithDetail("owned events require an identity")
	}
	events, err := s.Store.Events().ListEvents(ctx, store.EventFilter{CreatedBy: actor.ID, IncludeInactive: true})
	if err != nil {
		return nil, storeErr(err)
	}
	now := clockOrDefault(s.Now)
	out := make([]Listing, len(events))
	for i, e := range events {
		out[i] = s.classify(e, now)
	}
	return out, nil
}

func (s *EventService) classify(e domain.Event, now time.Time) Listing {
	if !e.IsActive {
		return Listing{Event: e}
	}
	return Listing{Event: e, Stage: domain.Classify(e, now)}
}

// Update applies patch to an event actor owns. The event row is read inside
// the transaction so a capacity cut is checked against a stable count.
func (s *EventService) Update(ctx context.Context, actor domain.Identity, id string, patch domain.EventPatch) (domain.Event, error) {
	var out domain.Event
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Events().GetEvent(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.EditEvent, policy.Resource{Event: &current}); err != nil {
			return err
		}

		next := patch.ApplyTo(current)
		next.Title = strings.TrimSpace(next.Title)
		next.EventDate = next.EventDate.UTC()
		next.RegistrationDeadline = utcPtr(next.RegistrationDeadline)
		if err := domain.ValidateEvent(next); err != nil {
			return err
		}

		if next.MaxParticipants != nil {
			active, err := tx.Registrations().CountActiveRegistrations(ctx, id)
			if err != nil {
				return err
			}
			if active > *next.MaxParticipants {
				return domain.ErrInvalidCapacity.WithDetail(
					fmt.Sprintf("max_participants %d is below the %d confirmed registrations", *next.MaxParticipants, active))
			}
		}

		next.UpdatedAt = clockOrDefault(s.Now)
		if err := tx.Events().UpdateEvent(ctx, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return domain.Event{}, storeErr(err)
	}

	slogx.FromContext(ctx).Info("event updated", slog.String("event_id", id))
	return out, nil
}

// Deactivate soft-deletes an event. Its registrations stay on record.
func (s *EventService) Deactivate(ctx context.Context, actor domain.Identity, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := tx.Events().GetEvent(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.DeactivateEvent, policy.Resource{Event: &e}); err != nil {
			return err
		}
		return tx.Events().DeactivateEvent(ctx, id, clockOrDefault(s.Now))
	})
	if err != nil {
		return storeErr(err)
	}

	slogx.FromContext(ctx).Info("event deactivated", slog.String("event_id", id), slog.String("by", actor.ID))
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
