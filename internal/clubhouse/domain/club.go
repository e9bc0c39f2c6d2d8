package domain

import "time"

type Club struct {
	ID           string
	Name         string
	Description  string
	Department   string
	ContactEmail string
	ContactPhone string
	Established  *time.Time
	CreatedBy    string // empty for publicly submitted clubs
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether identityID is the club's owner. Unowned clubs are
// owned by nobody.
func (c Club) OwnedBy(identityID string) bool {
	return c.CreatedBy != "" && c.CreatedBy == identityID
}
