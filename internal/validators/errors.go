package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is the sentinel matched by every [InvalidInputError].
	// Callers use [errors.Is] against this value; the concrete field and
	// reason are recovered with [errors.As].
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInputError reports a caller-correctable validation failure on a
// single named field. It matches ErrInvalidInput under [errors.Is].
type InvalidInputError struct {
	Field  string
	Reason string
}

// NewInvalidInput builds an *InvalidInputError for the given field.
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) true for every InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
