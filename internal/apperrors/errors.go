package apperrors

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services and controllers. Controllers map
// these onto HTTP statuses; messages stay generic so responses never reveal
// whether a record exists or why a credential was rejected.
var (
	// ErrNotFound covers both "no such record" and "record owned by someone
	// else" so the API never leaks existence across owners.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken signals a duplicate registration email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated means no usable token accompanied the request.
	ErrUnauthenticated = errors.New("not authorized")
)

// ValidationError aggregates every violated field constraint into a single
// error, joined for the response body.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// NewValidationError builds a ValidationError from one or more violation
// messages.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
