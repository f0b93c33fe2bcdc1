package store

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("record not found")

// ErrNothingToUpdate is returned by Update when the partial fields contain
// no recognized field. It is a validation failure.
var ErrNothingToUpdate = &ValidationError{Message: "Nothing to update"}

// NotFoundError reports an id that is not present in a collection.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports a missing or malformed field in caller input.
// Message is safe to show to API clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
