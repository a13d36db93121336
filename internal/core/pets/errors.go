package pets

import "errors"

// ErrPetNotFound is returned when a pet lookup finds no matching record
var ErrPetNotFound = errors.New("pet not found")

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPetNotFound)
}
