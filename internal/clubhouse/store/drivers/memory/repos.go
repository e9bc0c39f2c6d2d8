package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

type identitiesRepo struct{ db *db }

func (r *identitiesRepo) GetIdentityByID(ctx context.Context, id string) (out domain.Identity, err error) {
	err = r.db.do(func(st *state) error {
		i, ok := st.identities[id]
		if !ok {
			return store.ErrNotFound
		}
		out = i
		return nil
	})
	return out, err
}

func (r *identitiesRepo) FindIdentityByEmail(ctx context.Context, email string) (out domain.Identity, err error) {
	err = r.db.do(func(st *state) error {
		for _, i := range st.identities {
			if strings.EqualFold(i.Email, email) {
				out = i
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, i domain.Identity) error {
	return r.db.do(func(st *state) error {
		if _, ok := st.identities[i.ID]; ok {
			return store.ErrAlreadyExists
		}
		for _, other := range st.identities {
			if strings.EqualFold(other.Email, i.Email) {
				return store.ErrAlreadyExists
			}
		}
		st.identities[i.ID] = i
		return nil
	})
}

func (r *identitiesRepo) UpdateProfile(ctx context.Context, i domain.Identity) error {
	return r.db.do(func(st *state) error {
		cur, ok := st.identities[i.ID]
		if !ok {
			return store.ErrNotFound
		}
		cur.DisplayName = i.DisplayName
		cur.Department = i.Department
		cur.YearOfStudy = i.YearOfStudy
		cur.UpdatedAt = i.UpdatedAt
		st.identities[i.ID] = cur
		return nil
	})
}

type clubsRepo struct{ db *db }

func (r *clubsRepo) GetClub(ctx context.Context, id string) (out domain.Club, err error) {
	err = r.db.do(func(st *state) error {
		c, ok := st.clubs[id]
		if !ok {
			return store.ErrNotFound
		}
		out = c
		return nil
	})
	return out, err
}

func (r *clubsRepo) ListClubs(ctx context.Context, f store.ClubFilter) (out []domain.Club, err error) {
	err = r.db.do(func(st *state) error {
		for _, c := range st.clubs {
			if !f.IncludeInactive && !c.IsActive {
				continue
			}
			if f.CreatedBy != "" && c.CreatedBy != f.CreatedBy {
				continue
			}
			out = append(out, c)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Club) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, err
}

func (r *clubsRepo) CreateClub(ctx context.Context, c domain.Club) error {
	return r.db.do(func(st *state) error {
		if _, ok := st.clubs[c.ID]; ok {
			return store.ErrAlreadyExists
		}
		st.clubs[c.ID] = c
		return nil
	})
}

func (r *clubsRepo) UpdateClub(ctx context.Context, c domain.Club) error {
	return r.db.do(func(st *state) error {
		cur, ok := st.clubs[c.ID]
		if !ok {
			return store.ErrNotFound
		}
		c.CreatedBy = cur.CreatedBy
		c.IsActive = cur.IsActive
		c.CreatedAt = cur.CreatedAt
		st.clubs[c.ID] = c
		return nil
	})
}

func (r *clubsRepo) DeactivateClub(ctx context.Context, id string, at time.Time) error {
	return r.db.do(func(st *state) error {
		c, ok := st.clubs[id]
		if !ok {
			return store.ErrNotFound
		}
		c.IsActive = false
		c.UpdatedAt = at
		st.clubs[id] = c
		return nil
	})
}

type eventsRepo struct{ db *db }

func (r *eventsRepo) GetEvent(ctx context.Context, id string) (out domain.Event, err error) {
	err = r.db.do(func(st *state) error {
		e, ok := st.events[id]
		if !ok {
			return store.ErrNotFound
		}
		out = e
		return nil
	})
	return out, err
}

func (r *eventsRepo) ListEvents(ctx context.Context, f store.EventFilter) (out []domain.Event, err error) {
	err = r.db.do(func(st *state) error {
		for _, e := range st.events {
			if !f.IncludeInactive && !e.IsActive {
				continue
			}
			if f.ClubID != "" && e.ClubID != f.ClubID {
				continue
			}
			if f.CreatedBy != "" && e.CreatedBy != f.CreatedBy {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Event) int {
		return cmp.Or(a.EventDate.Compare(b.EventDate), cmp.Compare(a.ID, b.ID))
	})
	return out, err
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	return r.db.do(func(st *state) error {
		if _, ok := st.events[e.ID]; ok {
			return store.ErrAlreadyExists
		}
		st.events[e.ID] = e
		return nil
	})
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	return r.db.do(func(st *state) error {
		cur, ok := st.events[e.ID]
		if !ok {
			return store.ErrNotFound
		}
		e.CreatedBy = cur.CreatedBy
		e.ClubID = cur.ClubID
		e.IsActive = cur.IsActive
		e.CreatedAt = cur.CreatedAt
		st.events[e.ID] = e
		return nil
	})
}

func (r *eventsRepo) DeactivateEvent(ctx context.Context, id string, at time.Time) error {
	return r.db.do(func(st *state) error {
		e, ok := st.events[id]
		if !ok {
			return store.ErrNotFound
		}
		e.IsActive = false
		e.UpdatedAt = at
		st.events[id] = e
		return nil
	})
}

type membershipsRepo struct{ db *db }

func (r *membershipsRepo) GetMembership(ctx context.Context, id string) (out domain.Membership, err error) {
	err = r.db.do(func(st *state) error {
		m, ok := st.memberships[id]
		if !ok {
			return store.ErrNotFound
		}
		out = m
		return nil
	})
	return out, err
}

func (r *membershipsRepo) ListMemberships(ctx context.Context, clubID string) (out []domain.Membership, err error) {
	err = r.db.do(func(st *state) error {
		for _, m := range st.memberships {
			if m.ClubID == clubID && m.IsActive {
				out = append(out, m)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Membership) int {
		return cmp.Or(a.JoinedAt.Compare(b.JoinedAt), cmp.Compare(a.ID, b.ID))
	})
	return out, err
}

func (r *membershipsRepo) InsertMembershipIfAbsent(ctx context.Context, m domain.Membership) error {
	return r.db.do(func(st *state) error {
		if _, ok := st.memberships[m.ID]; ok {
			return store.ErrAlreadyExists
		}
		for _, other := range st.memberships {
			if other.IsActive && other.ClubID == m.ClubID && other.IdentityID == m.IdentityID {
				return store.ErrAlreadyExists
			}
		}
		m.IsActive = true
		m.EndedAt = nil
		st.memberships[m.ID] = m
		return nil
	})
}

func (r *membershipsRepo) DeactivateMembership(ctx context.Context, id string, at time.Time) error {
	return r.db.do(func(st *state) error {
		m, ok := st.memberships[id]
		if !ok || !m.IsActive {
			return store.ErrNotFound
		}
		m.IsActive = false
		m.EndedAt = &at
		st.memberships[id] = m
		return nil
	})
}

func (r *membershipsRepo) UpdateMembershipPosition(ctx context.Context, id string, p domain.Position) error {
	return r.db.do(func(st *state) error {
		m, ok := st.memberships[id]
		if !ok || !m.IsActive {
			return store.ErrNotFound
		}
		m.Position = p
		st.memberships[id] = m
		return nil
	})
}

type registrationsRepo struct{ db *db }

func (r *registrationsRepo) GetRegistration(ctx context.Context, id string) (out domain.Registration, err error) {
	err = r.db.do(func(st *state) error {
		reg, ok := st.registrations[id]
		if !ok {
			return store.ErrNotFound
		}
		out = reg
		return nil
	})
	return out, err
}

func (r *registrationsRepo) ListRegistrations(ctx context.Context, eventID string) (out []domain.Registration, err error) {
	err = r.db.do(func(st *state) error {
		for _, reg := range st.registrations {
			if reg.EventID == eventID && reg.Active() {
				out = append(out, reg)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Registration) int {
		return cmp.Or(a.RegisteredAt.Compare(b.RegisteredAt), cmp.Compare(a.ID, b.ID))
	})
	return out, err
}

func countActive(st *state, eventID string) int {
	n := 0
	for _, reg := range st.registrations {
		if reg.EventID == eventID && reg.Active() {
			n++
		}
	}
	return n
}

func (r *registrationsRepo) CountActiveRegistrations(ctx context.Context, eventID string) (n int, err error) {
	err = r.db.do(func(st *state) error {
		n = countActive(st, eventID)
		return nil
	})
	return n, err
}

func (r *registrationsRepo) FindActiveRegistration(ctx context.Context, eventID, identityID string) (out domain.Registration, err error) {
	err = r.db.do(func(st *state) error {
		for _, reg := range st.registrations {
			if reg.EventID == eventID && reg.IdentityID == identityID && reg.Active() {
				out = reg
				return nil
			}
		}
		return store.ErrNotFound
	})
	return out, err
}

func (r *registrationsRepo) InsertRegistrationIfCapacity(ctx context.Context, reg domain.Registration) error {
	return r.db.do(func(st *state) error {
		e, ok := st.events[reg.EventID]
		switch {
		case !ok:
			return store.ErrNotFound
		case !e.IsActive:
			return store.ErrInactive
		}
		if _, ok := st.registrations[reg.ID]; ok {
			return store.ErrAlreadyExists
		}
		for _, other := range st.registrations {
			if other.EventID == reg.EventID && other.IdentityID == reg.IdentityID && other.Active() {
				return store.ErrAlreadyExists
			}
		}
		if e.Full(countActive(st, reg.EventID)) {
			return store.ErrCapacityReached
		}
		reg.Status = domain.RegistrationConfirmed
		reg.CancelledAt = nil
		st.registrations[reg.ID] = reg
		return nil
	})
}

func (r *registrationsRepo) CancelRegistration(ctx context.Context, id string, at time.Time) error {
	return r.db.do(func(st *state) error {
		reg, ok := st.registrations[id]
		if !ok || !reg.Active() {
			return store.ErrNotFound
		}
		reg.Status = domain.RegistrationCancelled
		reg.CancelledAt = &at
		st.registrations[id] = reg
		return nil
	})
}
