package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidOfferType is returned when an offer type is not one of
	// the known type strings.
	ErrInvalidOfferType = errors.New("invalid offer type")

	// ErrInvalidGender is returned when a gender value is not one of
	// "male", "female" or the empty string.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrNegativePrice is returned when a price is below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrEmptyTitle is returned when an offer title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyDescription is returned when an offer description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrEmptyName is returned when a user name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyFreelancer is returned when an offer has no owning user.
	ErrEmptyFreelancer = errors.New("freelancer cannot be empty")
)

// ValidationError wraps a field-level validation failure with the name
// of the offending field so API handlers can report a precise path.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
