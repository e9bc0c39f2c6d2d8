package domain

import "time"

type Event struct {
	ID                   string
	Title                string
	Description          string
	EventDate            time.Time
	Location             string
	MaxParticipants      *int       // nil = unlimited
	RegistrationDeadline *time.Time // nil = open until the event starts
	ClubID               string     // empty when not linked to a club
	CreatedBy            string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (e Event) OwnedBy(identityID string) bool {
	return e.CreatedBy != "" && e.CreatedBy == identityID
}

// DeadlinePassed reports whether now is strictly after the registration
// deadline.
func (e Event) DeadlinePassed(now time.Time) bool {
	return e.RegistrationDeadline != nil && now.After(*e.RegistrationDeadline)
}

// Full reports whether active registrations have reached the limit.
func (e Event) Full(active int) bool {
	return e.MaxParticipants != nil && active >= *e.MaxParticipants
}
