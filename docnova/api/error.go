package api

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrSessionExpired matches any failure classified as an expired session, for
// errors.Is checks without digging out the concrete error type.
var ErrSessionExpired = errors.New("session expired")

// Category is a user-facing classification of a failed remote call. It is
// resolved to a localized message by the i18n package, the transport layer
// never deals in display strings.
type Category string

const (
	CategoryInvalidInput   Category = "invalid_input"
	CategorySessionExpired Category = "session_expired"
	CategoryForbidden      Category = "forbidden"
	CategoryNotFound       Category = "not_found"
	CategoryServerError    Category = "server_error"
	CategoryUnavailable    Category = "service_unavailable"
	CategoryTimeout        Category = "timeout"
	CategoryConnection     Category = "connection"
	CategoryGeneric        Category = "generic"
)

// Categories lists every classification a failed call can produce.
var Categories = []Category{
	CategoryInvalidInput,
	CategorySessionExpired,
	CategoryForbidden,
	CategoryNotFound,
	CategoryServerError,
	CategoryUnavailable,
	CategoryTimeout,
	CategoryConnection,
	CategoryGeneric,
}

// FailureKind tells Classify whether a failure carries an HTTP status or died
// on the wire before one arrived.
type FailureKind int

const (
	KindStatus FailureKind = iota
	KindTimeout
	KindUnreachable
)

// Classify maps an HTTP status and failure kind to a message category.
// Pure function, status is ignored for network-level kinds.
func Classify(status int, kind FailureKind) Category {
	switch kind {
	case KindTimeout:
		return CategoryTimeout
	case KindUnreachable:
		return CategoryConnection
	}

	switch status {
	case 400:
		return CategoryInvalidInput
	case 401:
		return CategorySessionExpired
	case 403:
		return CategoryForbidden
	case 404:
		return CategoryNotFound
	case 500:
		return CategoryServerError
	case 502, 503, 504:
		return CategoryUnavailable
	default:
		return CategoryGeneric
	}
}

// RequestError is a classified failure of a remote call.
type RequestError struct {
	StatusCode    int
	Category      Category
	Err           error
	Body          string
	ServerMessage string
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("status: %d category: %s err: %v message: %s", r.StatusCode, r.Category, r.Err, r.ServerMessage)
}

func (r *RequestError) Unwrap() error { return r.Err }

func (r *RequestError) Is(target error) bool {
	return target == ErrSessionExpired && r.Category == CategorySessionExpired
}

// AuthError is a login call that did not succeed.
type AuthError struct {
	RequestError
}

// SearchError is a search call that did not succeed.
type SearchError struct {
	RequestError
}

// ValidationError is a client-side rejection of form input, no remote call
// was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
}

// serverMessage pulls the optional message field out of an error body.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var msg string
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key == "message" {
			s, err := d.Str()
			if err != nil {
				return err
			}
			msg = s
			return nil
		}
		return d.Skip()
	}); err != nil {
		return ""
	}
	return msg
}
