package domain

import (
	"fmt"
	"time"
)

type RegistrationStatus uint8

const (
	RegistrationUnknown RegistrationStatus = iota
	RegistrationConfirmed
	RegistrationCancelled
)

func (s RegistrationStatus) String() string {
	switch s {
	case RegistrationConfirmed:
		return "confirmed"
	case RegistrationCancelled:
		return "cancelled"
	}
	return "unknown"
}

func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	switch s {
	case "confirmed":
		return RegistrationConfirmed, nil
	case "cancelled":
		return RegistrationCancelled, nil
	}
	return RegistrationUnknown, fmt.Errorf("unknown registration status %q", s)
}

type Registration struct {
	ID           string
	EventID      string
	IdentityID   string
	Status       RegistrationStatus
	RegisteredAt time.Time
	CancelledAt  *time.Time
}

func (r Registration) Active() bool {
	return r.Status == RegistrationConfirmed
}
