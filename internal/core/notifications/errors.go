package notifications

import "errors"

var (
	// ErrNotificationNotFound is returned when a notification lookup finds no
	// matching record
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrMessageEmpty indicates the notification message is missing
	ErrMessageEmpty = errors.New("notification message is required")

	// ErrMessageTooLong indicates the message exceeds the stored length cap
	ErrMessageTooLong = errors.New("notification message exceeds 500 characters")

	// ErrInvalidType indicates an unknown notification type
	ErrInvalidType = errors.New("invalid notification type")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotificationNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMessageEmpty) ||
		errors.Is(err, ErrMessageTooLong) ||
		errors.Is(err, ErrInvalidType)
}
