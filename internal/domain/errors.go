package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotTaken signals that another booking already holds the
	// requested start instant. Expected under normal operation.
	ErrSlotTaken = errors.New("this time slot is already booked")

	// ErrUnauthenticated signals a missing caller identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden signals an authenticated caller without rights to
	// the resource.
	ErrForbidden = errors.New("not allowed")
)

// ValidationError carries a field-level message for malformed input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
