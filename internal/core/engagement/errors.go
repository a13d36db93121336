package engagement

import "errors"

var (
	// ErrPostNotFound indicates the post being liked or commented on doesn't
	// exist
	ErrPostNotFound = errors.New("post not found")

	// ErrTextEmpty indicates the comment text is missing
	ErrTextEmpty = errors.New("comment text is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTextEmpty)
}
