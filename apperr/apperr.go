// apperr.go - Error taxonomy shared by every component and its mapping to status codes

package apperr // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel errors and unwrapping
	"net/http" // HTTP status codes
)

// Code is the application-level status code returned in every response envelope.
// It is distinct from the HTTP status.
type Code string

const ( // Domain status codes
	SC200 Code = "SC200" // Success
	SC400 Code = "SC400" // Validation failure or unreadable upload
	SC401 Code = "SC401" // Bad credentials
	SC404 Code = "SC404" // Unknown resource (food label, route)
	SC409 Code = "SC409" // Duplicate identity
	SC500 Code = "SC500" // Storage, model or unexpected failure
)

// Error kinds. Components wrap these so callers can test with errors.Is.
var (
	ErrValidation = errors.New("validation error") // Missing or malformed input
	ErrConflict   = errors.New("conflict")         // Duplicate username or email
	ErrAuth       = errors.New("auth error")       // Unknown user or wrong password
	ErrNotFound   = errors.New("not found")        // Unknown food label
	ErrDecode     = errors.New("decode error")     // Unreadable image
	ErrInference  = errors.New("inference error")  // Model load/shape/runtime failure
	ErrStorage    = errors.New("storage error")    // Database unavailable or query failure
)

// Error carries a kind, the human-readable description shown to clients and
// the underlying cause (if any).
type Error struct {
	Kind  error  // One of the Err* sentinels
	Desc  string // Client-facing description
	Cause error  // Wrapped internal failure, may be nil
}

// New returns an *Error of the given kind without an underlying cause.
func New(kind error, desc string) *Error {
	return &Error{Kind: kind, Desc: desc}
}

// Wrap returns an *Error of the given kind wrapping cause.
func Wrap(kind error, desc string, cause error) *Error {
	return &Error{Kind: kind, Desc: desc, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Desc + ": " + e.Cause.Error()
	}
	return e.Desc
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Cause }

// CodeOf maps an error to its status code. Unknown errors are SC500.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return SC200
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDecode):
		return SC400
	case errors.Is(err, ErrAuth):
		return SC401
	case errors.Is(err, ErrNotFound):
		return SC404
	case errors.Is(err, ErrConflict):
		return SC409
	default:
		return SC500
	}
}

// DescOf returns the client-facing description carried by err, or fallback
// when err is not an *Error.
func DescOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Desc != "" {
		return e.Desc
	}
	return fallback
}

// HTTPStatus returns the HTTP status mirrored by a domain code.
func (c Code) HTTPStatus() int {
	switch c {
	case SC200:
		return http.StatusOK
	case SC400:
		return http.StatusBadRequest
	case SC401:
		return http.StatusUnauthorized
	case SC404:
		return http.StatusNotFound
	case SC409:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
