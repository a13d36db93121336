package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when a post lookup finds no matching record
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthorized is returned when the actor lacks permission for a
	// mutating action (non-author edit, non-moderator delete)
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsForbidden checks if error is an authorization error
func IsForbidden(err error) bool {
	return errors.Is(err, ErrNotAuthorized)
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
