package domain

import "time"

// ClubPatch holds the editable club fields. Nil fields are left unchanged.
type ClubPatch struct {
	Name         *string
	Description  *string
	Department   *string
	ContactEmail *string
	ContactPhone *string
	Established  *time.Time
}

func (p ClubPatch) ApplyTo(c Club) Club {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Department != nil {
		c.Department = *p.Department
	}
	if p.ContactEmail != nil {
		c.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		c.ContactPhone = *p.ContactPhone
	}
	if p.Established != nil {
		est := *p.Established
		c.Established = &est
	}
	return c
}

// EventPatch holds the editable event fields. The Clear flags unset the
// optional limits, since a nil pointer already means "unchanged".
type EventPatch struct {
	Title                *string
	Description          *string
	EventDate            *time.Time
	Location             *string
	MaxParticipants      *int
	RegistrationDeadline *time.Time

	ClearMaxParticipants      bool
	ClearRegistrationDeadline bool
}

func (p EventPatch) ApplyTo(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	switch {
	case p.ClearMaxParticipants:
		e.MaxParticipants = nil
	case p.MaxParticipants != nil:
		n := *p.MaxParticipants
		e.MaxParticipants = &n
	}
	switch {
	case p.ClearRegistrationDeadline:
		e.RegistrationDeadline = nil
	case p.RegistrationDeadline != nil:
		d := *p.RegistrationDeadline
		e.RegistrationDeadline = &d
	}
	return e
}

type ProfilePatch struct {
	DisplayName *string
	Department  *string
	YearOfStudy *int
}

func (p ProfilePatch) ApplyTo(i Identity) Identity {
	if p.DisplayName != nil {
		i.DisplayName = *p.DisplayName
	}
	if p.Department != nil {
		i.Department = *p.Department
	}
	if p.YearOfStudy != nil {
		y := *p.YearOfStudy
		i.YearOfStudy = &y
	}
	return i
}
