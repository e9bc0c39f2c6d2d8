package clubsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

// Error codes returned in ErrorResponse.Error.
const (
	CodeInvalidRequest        = "invalid_request"
	CodeInvalidToken          = "invalid_token"
	CodeIdentityNotRegistered = "identity_not_registered"
	CodeRateLimitExceeded     = "rate_limit_exceeded"
	CodeServerError           = "server_error"

	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeIdentityNotFound    = "identity_not_found"
	CodeIdentityExists      = "identity_exists"
	CodeDuplicateMembership = "duplicate_membership"
	CodeAlreadyRegistered   = "already_registered"
	CodeCapacityExceeded    = "capacity_exceeded"
	CodeEventInactive       = "event_inactive"
	CodeRegistrationClosed  = "registration_closed"
	CodeEventNotUpcoming    = "event_not_upcoming"
	CodeInvalidPosition     = "invalid_position"
	CodeInvalidRole         = "invalid_role"
	CodeInvalidEmailDomain  = "invalid_email_domain"
	CodeInvalidSchedule     = "invalid_schedule"
	CodeInvalidCapacity     = "invalid_capacity"
	CodeRequiredField       = "required_field"
	CodeInvalidField        = "invalid_field"
	CodeUnavailable         = "unavailable"
)

// APIError is a non-2xx response. The server writes it and the client
// parses it back.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as the response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        CodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrIdentityNotRegistered = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        CodeIdentityNotRegistered,
		Description: "sign up before using this endpoint",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        CodeServerError,
		Description: "internal server error",
	}
)

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Code == code
}

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        CodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
