// internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the failure categories the
// storefront core distinguishes.
type Kind string

const (
	// KindNotFound means the target (product, cart line, order) is absent.
	KindNotFound Kind = "not_found"
	// KindBadRequest means the mutation input was malformed (e.g. a
	// non-positive quantity).
	KindBadRequest Kind = "bad_request"
	// KindServerError means the remote store failed.
	KindServerError Kind = "server_error"
	// KindValidation means a local invariant was violated before any remote
	// call was made (e.g. ordering an empty selection).
	KindValidation Kind = "validation"
)

// Error is the typed error returned from repository and service calls.
// Presentation-layer translation (HTTP status, dialog message) is a caller
// concern.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a NotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest creates a BadRequest error.
func BadRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// ServerError creates a ServerError wrapping the underlying cause.
func ServerError(message string, err error) *Error {
	return &Error{Kind: KindServerError, Message: message, Err: err}
}

// Validation creates a ValidationError.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindServerError when err carries no
// classification.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindServerError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
