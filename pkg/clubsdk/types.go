package clubsdk

import "time"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Error is the machine readable code (e.g. "forbidden", "capacity_exceeded")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the service's dependencies.
type HealthChecks struct {
	// Database indicates the store connection status
	Database string `json:"database"`

	// Keys indicates whether token verification keys are loaded
	Keys string `json:"keys"`
}

// ============================================================================
// Identity Types
// ============================================================================

type SignUpRequest struct {
	// Email must be in the institutional domain. Defaults to the token's
	// email claim when empty.
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name"`

	// Role is one of student, faculty, club_officer.
	Role        string `json:"role"`
	Department  string `json:"department,omitempty"`
	YearOfStudy *int   `json:"year_of_study,omitempty"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Department  *string `json:"department,omitempty"`
	YearOfStudy *int    `json:"year_of_study,omitempty"`
}

type IdentityResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Department  string    `json:"department,omitempty"`
	YearOfStudy *int      `json:"year_of_study,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================================================================
// Club Types
// ============================================================================

// ClubRequest creates a club, or submits one for review.
type ClubRequest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Department   string     `json:"department,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	ContactPhone string     `json:"contact_phone,omitempty"`
	Established  *time.Time `json:"established,omitempty"`
}

// UpdateClubRequest holds the fields to change. Omitted fields are kept.
type UpdateClubRequest struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Department   *string    `json:"department,omitempty"`
	ContactEmail *string    `json:"contact_email,omitempty"`
	ContactPhone *string    `json:"contact_phone,omitempty"`
	Established  *time.Time `json:"established,omitempty"`
}

type ClubResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Department   string     `json:"department,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	ContactPhone string     `json:"contact_phone,omitempty"`
	Established  *time.Time `json:"established,omitempty"`
	CreatedBy    string     `json:"created_by,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ListClubsResponse struct {
	Clubs []ClubResponse `json:"clubs"`
}

// ============================================================================
// Membership Types
// ============================================================================

type AddMemberRequest struct {
	// Email of a registered identity.
	Email string `json:"email"`

	// Position is one of president, vice_president, secretary,
	// event_manager, pr_team, other.
	Position string `json:"position"`
}

type ChangePositionRequest struct {
	Position string `json:"position"`
}

type MemberResponse struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"club_id"`
	IdentityID  string    `json:"identity_id"`
	DisplayName string    `json:"display_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Position    string    `json:"position"`
	JoinedAt    time.Time `json:"joined_at"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ============================================================================
// Event Types
// ============================================================================

type EventRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	EventDate            time.Time  `json:"event_date"`
	Location             string     `json:"location,omitempty"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	ClubID               string     `json:"club_id,omitempty"`
}

// UpdateEventRequest holds the fields to change. The clear flags remove a
// capacity limit or deadline.
type UpdateEventRequest struct {
	Title                *string    `json:"title,omitempty"`
	Description          *string    `json:"description,omitempty"`
	EventDate            *time.Time `json:"event_date,omitempty"`
	Location             *string    `json:"location,omitempty"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`

	ClearMaxParticipants      bool `json:"clear_max_participants,omitempty"`
	ClearRegistrationDeadline bool `json:"clear_registration_deadline,omitempty"`
}

type EventResponse struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	EventDate            time.Time  `json:"event_date"`
	Location             string     `json:"location,omitempty"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	ClubID               string     `json:"club_id,omitempty"`
	CreatedBy            string     `json:"created_by"`
	IsActive             bool       `json:"is_active"`

	// Stage is upcoming, ongoing or completed. Empty for inactive events.
	Stage     string    `json:"stage,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ListEventsParams filters GET /v1/events.
type ListEventsParams struct {
	ClubID    string
	CreatedBy string
	Stage     string
}

// ============================================================================
// Registration Types
// ============================================================================

type RegistrationResponse struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	IdentityID   string     `json:"identity_id"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registered_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

type ListRegistrationsResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Count         int                    `json:"count"`
}
