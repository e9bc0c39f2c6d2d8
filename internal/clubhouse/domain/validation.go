package domain

import (
	"net/mail"
	"strings"
)

// ValidateEmailDomain checks that email is a well-formed address ending in
// @domain. An empty domain disables the check.
func ValidateEmailDomain(email, domain string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return ErrInvalidEmailDomain.WithDetail("malformed email address")
	}
	if domain == "" {
		return nil
	}
	suffix := "@" + strings.ToLower(strings.TrimPrefix(domain, "@"))
	if !strings.HasSuffix(strings.ToLower(addr.Address), suffix) {
		return ErrInvalidEmailDomain
	}
	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequiredField.WithDetail(field + " is required")
	}
	return nil
}

// ValidateClub checks a club before it is created or saved. A club needs a
// name and either an owner or a contact email.
func ValidateClub(c Club, emailDomain string) error {
	if err := required("name", c.Name); err != nil {
		return err
	}
	if strings.TrimSpace(c.ContactEmail) == "" {
		if c.CreatedBy == "" {
			return ErrRequiredField.WithDetail("contact_email is required")
		}
		return nil
	}
	return ValidateEmailDomain(c.ContactEmail, emailDomain)
}

// ValidateEvent checks an event before it is created or saved.
func ValidateEvent(e Event) error {
	if err := required("title", e.Title); err != nil {
		return err
	}
	if err := required("created_by", e.CreatedBy); err != nil {
		return err
	}
	if e.EventDate.IsZero() {
		return ErrRequiredField.WithDetail("event_date is required")
	}
	if e.MaxParticipants != nil && *e.MaxParticipants < 0 {
		return ErrInvalidCapacity
	}
	if e.RegistrationDeadline != nil && e.RegistrationDeadline.After(e.EventDate) {
		return ErrInvalidSchedule
	}
	return nil
}

// ValidateIdentity checks a new identity at sign-up.
func ValidateIdentity(i Identity, emailDomain string) error {
	if err := required("display_name", i.DisplayName); err != nil {
		return err
	}
	if i.Role == RoleUnknown {
		return ErrInvalidRole
	}
	if i.YearOfStudy != nil && (*i.YearOfStudy < 1 || *i.YearOfStudy > 6) {
		return ErrInvalidField.WithDetail("year_of_study must be between 1 and 6")
	}
	return ValidateEmailDomain(i.Email, emailDomain)
}
