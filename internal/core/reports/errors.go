package reports

import "errors"

var (
	// ErrReportNotFound is returned when a report lookup finds no matching
	// record
	ErrReportNotFound = errors.New("report not found")

	// ErrPostNotFound indicates the post being reported doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrReviewerNotFound indicates the reviewing user doesn't exist
	ErrReviewerNotFound = errors.New("reviewer not found")

	// ErrAlreadyReported indicates this reporter already filed a report
	// against this post
	ErrAlreadyReported = errors.New("post already reported by this user")

	// ErrInvalidReason indicates the reason is not one of the enumerated
	// values
	ErrInvalidReason = errors.New("invalid report reason")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReportNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrReviewerNotFound)
}

// IsConflict checks if an error is a duplicate-report error
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyReported)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidReason)
}
