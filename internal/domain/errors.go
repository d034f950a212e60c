package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrStoreTimeout marks a store call whose outcome is unknown. Callers may retry.
	ErrStoreTimeout = errors.New("store timeout")

	// ErrUnsupportedSchemaVersion is returned for events whose payload version
	// has no registered mapper.
	ErrUnsupportedSchemaVersion = errors.New("unsupported schema version")

	// ErrEmission is the sentinel behind every EmissionError.
	ErrEmission = errors.New("event emission failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// EmissionError reports that a store mutation succeeded but its domain event
// could not be emitted. Result holds the committed value so the caller can
// still report it.
type EmissionError struct {
	AggregateID string
	Result      any
	Err         error
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("emit event for %s: %v", e.AggregateID, e.Err)
}

func (e *EmissionError) Unwrap() []error { return []error{ErrEmission, e.Err} }
