// Package policy decides whether an identity may perform an action on a club
// or event. Decisions are made from an ordered rule table and never touch
// storage; callers load the resource first and pass it in.
package policy

import (
	"fmt"
	"slices"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
)

// Action is a mutating operation subject to authorization.
type Action uint8

const (
	ActionUnspecified Action = iota
	CreateClub
	EditClub
	DeactivateClub
	ManageMembership
	CreateEvent
	EditEvent
	DeactivateEvent
	Register
)

func (a Action) String() string {
	switch a {
	case CreateClub:
		return "create_club"
	case EditClub:
		return "edit_club"
	case DeactivateClub:
		return "deactivate_club"
	case ManageMembership:
		return "manage_membership"
	case CreateEvent:
		return "create_event"
	case EditEvent:
		return "edit_event"
	case DeactivateEvent:
		return "deactivate_event"
	case Register:
		return "register"
	}
	return "unspecified"
}

// Resource is the target of an action. Club is consulted by club actions,
// Event by event actions. Now is the evaluation instant for time dependent
// rules; the zero value means time.Now.
type Resource struct {
	Club  *domain.Club
	Event *domain.Event
	Now   time.Time
}

type rule struct {
	name    string
	actions []Action
	allow   func(id domain.Identity, r Resource) bool
}

// rules are evaluated top to bottom; the first rule that covers the action
// decides. An action no rule covers is denied.
var rules = []rule{
	{
		name:    "publishers_create",
		actions: []Action{CreateClub, CreateEvent},
		allow: func(id domain.Identity, _ Resource) bool {
			return id.Role.Publisher()
		},
	},
	{
		name:    "club_owner",
		actions: []Action{EditClub, DeactivateClub, ManageMembership},
		allow: func(id domain.Identity, r Resource) bool {
			return r.Club != nil && r.Club.OwnedBy(id.ID)
		},
	},
	{
		name:    "event_owner",
		actions: []Action{EditEvent, DeactivateEvent},
		allow: func(id domain.Identity, r Resource) bool {
			return r.Event != nil && r.Event.OwnedBy(id.ID)
		},
	},
	{
		name:    "open_registration",
		actions: []Action{Register},
		allow: func(_ domain.Identity, r Resource) bool {
			if r.Event == nil || !r.Event.IsActive {
				return false
			}
			return domain.Classify(*r.Event, r.now()) != domain.StageCompleted
		},
	},
}

func (r Resource) now() time.Time {
	if r.Now.IsZero() {
		return time.Now()
	}
	return r.Now
}

// Decision records which rule settled an authorization check.
type Decision struct {
	Allowed bool
	Rule    string
}

// Evaluate runs the rule table for id performing action on r.
func Evaluate(id domain.Identity, action Action, r Resource) Decision {
	if id.Anonymous() {
		return Decision{Rule: "anonymous"}
	}
	for _, rl := range rules {
		if slices.Contains(rl.actions, action) {
			return Decision{Allowed: rl.allow(id, r), Rule: rl.name}
		}
	}
	return Decision{Rule: "default_deny"}
}

// CanPerform reports whether id may perform action on r.
func CanPerform(id domain.Identity, action Action, r Resource) bool {
	return Evaluate(id, action, r).Allowed
}

// Authorize is CanPerform returning domain.ErrForbidden on denial.
func Authorize(id domain.Identity, action Action, r Resource) error {
	d := Evaluate(id, action, r)
	if d.Allowed {
		return nil
	}
	return domain.ErrForbidden.WithDetail(fmt.Sprintf("%s not permitted (%s)", action, d.Rule))
}
