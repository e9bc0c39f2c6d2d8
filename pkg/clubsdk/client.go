package clubsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the clubhouse service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the bearer access token sent with every request.
	Token string
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Token: token,
	}
}

// WithToken returns a copy of c that authenticates as another caller.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

// call is the common shape: send body, expect status, decode into out.
func call[T any](ctx context.Context, c *Client, method, path string, body any, status int) (*T, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	var out T
	if err := decodeJSON(resp, &out, status); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) noContent(ctx context.Context, method, path string) error {
	resp, err := c.do(ctx, method, path, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Health
// ============================================================================

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, http.MethodGet, "/livez", nil, http.StatusOK)
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, http.MethodGet, "/readyz", nil, http.StatusOK)
}

// ============================================================================
// Identities
// ============================================================================

// SignUp creates the caller's identity. The id is the token subject.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*IdentityResponse, error) {
	return call[IdentityResponse](ctx, c, http.MethodPost, "/v1/identities", req, http.StatusCreated)
}

func (c *Client) Me(ctx context.Context) (*IdentityResponse, error) {
	return call[IdentityResponse](ctx, c, http.MethodGet, "/v1/me", nil, http.StatusOK)
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*IdentityResponse, error) {
	return call[IdentityResponse](ctx, c, http.MethodPatch, "/v1/me", req, http.StatusOK)
}

// ============================================================================
// Clubs
// ============================================================================

func (c *Client) CreateClub(ctx context.Context, req ClubRequest) (*ClubResponse, error) {
	return call[ClubResponse](ctx, c, http.MethodPost, "/v1/clubs", req, http.StatusCreated)
}

// SubmitClub submits an unowned club for review. No identity is required.
func (c *Client) SubmitClub(ctx context.Context, req ClubRequest) (*ClubResponse, error) {
	return call[ClubResponse](ctx, c, http.MethodPost, "/v1/clubs/submissions", req, http.StatusCreated)
}

// ListClubs lists active clubs. No token is required.
func (c *Client) ListClubs(ctx context.Context) (*ListClubsResponse, error) {
	return call[ListClubsResponse](ctx, c, http.MethodGet, "/v1/clubs", nil, http.StatusOK)
}

// ListMyClubs lists every club the caller owns, including inactive ones.
func (c *Client) ListMyClubs(ctx context.Context) (*ListClubsResponse, error) {
	return call[ListClubsResponse](ctx, c, http.MethodGet, "/v1/me/clubs", nil, http.StatusOK)
}

func (c *Client) GetClub(ctx context.Context, id string) (*ClubResponse, error) {
	return call[ClubResponse](ctx, c, http.MethodGet, "/v1/clubs/"+url.PathEscape(id), nil, http.StatusOK)
}

func (c *Client) UpdateClub(ctx context.Context, id string, req UpdateClubRequest) (*ClubResponse, error) {
	return call[ClubResponse](ctx, c, http.MethodPatch, "/v1/clubs/"+url.PathEscape(id), req, http.StatusOK)
}

func (c *Client) DeactivateClub(ctx context.Context, id string) error {
	return c.noContent(ctx, http.MethodDelete, "/v1/clubs/"+url.PathEscape(id))
}

// ============================================================================
// Memberships
// ============================================================================

func (c *Client) AddMember(ctx context.Context, clubID string, req AddMemberRequest) (*MemberResponse, error) {
	return call[MemberResponse](ctx, c, http.MethodPost, "/v1/clubs/"+url.PathEscape(clubID)+"/members", req, http.StatusCreated)
}

func (c *Client) ListMembers(ctx context.Context, clubID string) (*ListMembersResponse, error) {
	return call[ListMembersResponse](ctx, c, http.MethodGet, "/v1/clubs/"+url.PathEscape(clubID)+"/members", nil, http.StatusOK)
}

func (c *Client) ChangePosition(ctx context.Context, membershipID, position string) (*MemberResponse, error) {
	return call[MemberResponse](ctx, c, http.MethodPatch, "/v1/memberships/"+url.PathEscape(membershipID),
		ChangePositionRequest{Position: position}, http.StatusOK)
}

func (c *Client) RemoveMember(ctx context.Context, membershipID string) error {
	return c.noContent(ctx, http.MethodDelete, "/v1/memberships/"+url.PathEscape(membershipID))
}

// ============================================================================
// Events
// ============================================================================

func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*EventResponse, error) {
	return call[EventResponse](ctx, c, http.MethodPost, "/v1/events", req, http.StatusCreated)
}

func (c *Client) ListEvents(ctx context.Context, p ListEventsParams) (*ListEventsResponse, error) {
	q := url.Values{}
	if p.ClubID != "" {
		q.Set("club_id", p.ClubID)
	}
	if p.CreatedBy != "" {
		q.Set("created_by", p.CreatedBy)
	}
	if p.Stage != "" {
		q.Set("stage", p.Stage)
	}
	path := "/v1/events"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return call[ListEventsResponse](ctx, c, http.MethodGet, path, nil, http.StatusOK)
}

// ListMyEvents lists every event the caller created, including inactive ones.
func (c *Client) ListMyEvents(ctx context.Context) (*ListEventsResponse, error) {
	return call[ListEventsResponse](ctx, c, http.MethodGet, "/v1/me/events", nil, http.StatusOK)
}

func (c *Client) GetEvent(ctx context.Context, id string) (*EventResponse, error) {
	return call[EventResponse](ctx, c, http.MethodGet, "/v1/events/"+url.PathEscape(id), nil, http.StatusOK)
}

func (c *Client) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*EventResponse, error) {
	return call[EventResponse](ctx, c, http.MethodPatch, "/v1/events/"+url.PathEscape(id), req, http.StatusOK)
}

func (c *Client) DeactivateEvent(ctx context.Context, id string) error {
	return c.noContent(ctx, http.MethodDelete, "/v1/events/"+url.PathEscape(id))
}

// ============================================================================
// Registrations
// ============================================================================

func (c *Client) Register(ctx context.Context, eventID string) (*RegistrationResponse, error) {
	return call[RegistrationResponse](ctx, c, http.MethodPost, "/v1/events/"+url.PathEscape(eventID)+"/registrations", nil, http.StatusCreated)
}

// ListRegistrations lists confirmed registrations. Event owner only.
func (c *Client) ListRegistrations(ctx context.Context, eventID string) (*ListRegistrationsResponse, error) {
	return call[ListRegistrationsResponse](ctx, c, http.MethodGet, "/v1/events/"+url.PathEscape(eventID)+"/registrations", nil, http.StatusOK)
}

func (c *Client) CancelRegistration(ctx context.Context, registrationID string) error {
	return c.noContent(ctx, http.MethodDelete, "/v1/registrations/"+url.PathEscape(registrationID))
}
