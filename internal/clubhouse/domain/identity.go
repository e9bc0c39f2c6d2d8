package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the fixed role an Identity signs up with.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleStudent
	RoleFaculty
	RoleClubOfficer
)

var roleNames = map[Role]string{
	RoleStudent:     "student",
	RoleFaculty:     "faculty",
	RoleClubOfficer: "club_officer",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// Publisher reports whether the role may publish clubs and events.
func (r Role) Publisher() bool {
	return r == RoleFaculty || r == RoleClubOfficer
}

// ParseRole accepts the canonical role names. "club_member" is the legacy
// spelling of club_officer and is still accepted.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, nil
	case "faculty":
		return RoleFaculty, nil
	case "club_officer", "club_member":
		return RoleClubOfficer, nil
	}
	return RoleUnknown, ErrInvalidRole.WithDetail(fmt.Sprintf("unknown role %q", s))
}

type Identity struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	Department  string
	YearOfStudy *int // students only
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Anonymous reports whether the identity carries no id.
func (i Identity) Anonymous() bool {
	return i.ID == ""
}
