package reminders

import "errors"

var (
	// ErrReminderNotFound is returned when a reminder lookup finds no
	// matching record
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrPetNotFound indicates the owning pet doesn't exist
	ErrPetNotFound = errors.New("pet not found")

	// ErrTitleEmpty indicates the reminder title is missing
	ErrTitleEmpty = errors.New("reminder title is required")

	// ErrInvalidRecurrence indicates an unknown recurrence value
	ErrInvalidRecurrence = errors.New("invalid recurrence: must be None, Daily, Weekly or Monthly")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReminderNotFound) || errors.Is(err, ErrPetNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleEmpty) || errors.Is(err, ErrInvalidRecurrence)
}
