package domain

import "errors"

// Kind classifies an Error for callers that only need to know how to react.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalid
	KindUnavailable // retryable
)

func (k Kind) String() string {
	switch k {
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Error is a coded outcome returned by every operation of the core. Two
// Errors match under errors.Is when their codes are equal, so the package
// level values below can be used as sentinels even after WithDetail or Wrap.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithDetail returns a copy of e carrying a more specific message.
func (e *Error) WithDetail(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// Wrap returns a copy of e with cause attached.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

// KindOf reports the Kind of the first Error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// ErrContended is attached to a rejection produced by the atomic store
// operation rather than by a pre-check, i.e. the caller lost a race.
var ErrContended = errors.New("lost concurrent update")

var (
	ErrForbidden = &Error{Kind: KindForbidden, Code: "forbidden", Message: "not permitted"}

	ErrNotFound         = &Error{Kind: KindNotFound, Code: "not_found", Message: "not found"}
	ErrIdentityNotFound = &Error{Kind: KindNotFound, Code: "identity_not_found", Message: "no registered identity with that email"}

	ErrDuplicateMembership = &Error{Kind: KindConflict, Code: "duplicate_membership", Message: "identity is already an active member of this club"}
	ErrAlreadyRegistered   = &Error{Kind: KindConflict, Code: "already_registered", Message: "identity is already registered for this event"}
	ErrCapacityExceeded    = &Error{Kind: KindConflict, Code: "capacity_exceeded", Message: "event is full"}
	ErrEventInactive       = &Error{Kind: KindConflict, Code: "event_inactive", Message: "event is no longer active"}
	ErrRegistrationClosed  = &Error{Kind: KindConflict, Code: "registration_closed", Message: "registration deadline has passed"}
	ErrEventNotUpcoming    = &Error{Kind: KindConflict, Code: "event_not_upcoming", Message: "event has already started"}
	ErrIdentityExists      = &Error{Kind: KindConflict, Code: "identity_exists", Message: "identity already signed up"}

	ErrInvalidPosition    = &Error{Kind: KindInvalid, Code: "invalid_position", Message: "invalid position"}
	ErrInvalidRole        = &Error{Kind: KindInvalid, Code: "invalid_role", Message: "invalid role"}
	ErrInvalidEmailDomain = &Error{Kind: KindInvalid, Code: "invalid_email_domain", Message: "email is not in the institutional domain"}
	ErrInvalidSchedule    = &Error{Kind: KindInvalid, Code: "invalid_schedule", Message: "registration deadline is after the event date"}
	ErrInvalidCapacity    = &Error{Kind: KindInvalid, Code: "invalid_capacity", Message: "max participants must be a non-negative integer"}
	ErrRequiredField      = &Error{Kind: KindInvalid, Code: "required_field", Message: "required field is empty"}
	ErrInvalidField       = &Error{Kind: KindInvalid, Code: "invalid_field", Message: "invalid field value"}

	ErrUnavailable = &Error{Kind: KindUnavailable, Code: "unavailable", Message: "storage unavailable"}
)

// Unavailable wraps a storage failure.
func Unavailable(cause error) error {
	return ErrUnavailable.Wrap(cause)
}
