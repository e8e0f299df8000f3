package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrReportNotFound  = fmt.Errorf("%w: report", ErrNotFound)
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)
	ErrTaskNotFound    = fmt.Errorf("%w: task", ErrNotFound)

	// Data quality errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrMalformedInput   = errors.New("malformed raw input")
	ErrNonFiniteValue   = errors.New("non-finite value intercepted")

	// Structural errors - the only fatal category in the pipeline
	ErrInvalidAggregate = errors.New("input aggregate is not a valid record")
	ErrUnknownAudience  = errors.New("unknown report audience")
	ErrUnknownSection   = errors.New("unknown report section")

	// Determinism errors
	ErrNonDeterministic = errors.New("non-deterministic result")
	ErrSeedMismatch     = errors.New("seed mismatch")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewAggregateError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidAggregate, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDataQualityError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrNonFiniteValue)
}

func IsStructuralError(err error) bool {
	return errors.Is(err, ErrInvalidAggregate) ||
		errors.Is(err, ErrUnknownAudience) ||
		errors.Is(err, ErrUnknownSection)
}
