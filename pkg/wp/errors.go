package wp

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an Error.
type ErrorKind int

// Error kinds. KindAPI is the root kind used for any failure that is not one
// of the more specific kinds.
const (
	KindAPI ErrorKind = iota
	KindAuthentication
	KindPermission
	KindNotFound
	KindValidation
)

// Fixed messages.
const (
	// UnknownErrorMessage is used when an error body carries no usable message.
	UnknownErrorMessage = "Unknown error occurred"

	// InvalidResponseMessage is used when a single-object endpoint returns something else.
	InvalidResponseMessage = "Invalid response format"
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindAPI:
		return "api"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrAPI            = errors.New("wordpress api error")
	ErrAuthentication = errors.New("authentication failed")
	ErrPermission     = errors.New("permission denied")
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("validation failed")
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrSiteURLRequired   = errors.New("site URL is required")
	ErrUnknownAuthMethod = errors.New("unknown authentication method")
	ErrInvalidTime       = errors.New("invalid wordpress timestamp")
)

// Error is the single error record returned by every client operation. It
// carries the classified kind, a human-readable message, the HTTP status code
// (zero for local failures) and the raw server payload when there was one.
type Error struct {
	Kind       ErrorKind      `json:"kind"               yaml:"kind"`
	Message    string         `json:"message"            yaml:"message"`
	StatusCode int            `json:"status_code"        yaml:"status_code"`
	Code       string         `json:"code,omitempty"     yaml:"code,omitempty"`
	Response   map[string]any `json:"response,omitempty" yaml:"response,omitempty"`
	Err        error          `json:"-"                  yaml:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindPermission:
		return ErrPermission
	case KindNotFound:
		return ErrNotFound
	case KindValidation:
		return ErrValidation
	default:
		return ErrAPI
	}
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewValidationError creates a Validation error for malformed local input.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewAuthenticationError creates an Authentication error wrapping cause.
func NewAuthenticationError(message string, cause error) *Error {
	return &Error{Kind: KindAuthentication, Message: message, Err: cause}
}

// NewTransportError reports a request that could not be sent or whose
// response could not be read.
func NewTransportError(cause error) *Error {
	return &Error{
		Kind:    KindAPI,
		Message: fmt.Sprintf("Request failed: %v", cause),
		Err:     cause,
	}
}

// Classify maps an HTTP status code and parsed error body to an Error.
// Callers only pass statuses >= 400.
func Classify(statusCode int, body map[string]any) *Error {
	apiErr := &Error{
		Kind:       kindForStatus(statusCode),
		Message:    ParseErrorMessage(body),
		StatusCode: statusCode,
		Response:   body,
	}

	if code, ok := body["code"].(string); ok {
		apiErr.Code = code
	}

	return apiErr
}

func kindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusForbidden:
		return KindPermission
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest:
		return KindValidation
	default:
		return KindAPI
	}
}

// ParseErrorMessage extracts the message from a WordPress error body: the
// top-level "message", then "data.message", then UnknownErrorMessage.
func ParseErrorMessage(body map[string]any) string {
	if body == nil {
		return UnknownErrorMessage
	}

	if message, ok := body["message"]; ok && message != nil {
		return fmt.Sprint(message)
	}

	if data, ok := body["data"].(map[string]any); ok {
		if message, ok := data["message"]; ok && message != nil {
			return fmt.Sprint(message)
		}
	}

	return UnknownErrorMessage
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// KindOf returns the kind of the *Error in err's chain, or KindAPI.
func KindOf(err error) ErrorKind {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Kind
	}

	return KindAPI
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsPermission checks if the error is a permission error.
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
