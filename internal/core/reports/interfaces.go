package reports

import "context"

// Service is the report triage workflow: intake, de-duplication, resolution.
type Service interface {
	// File creates a PENDING report. ErrAlreadyReported if this reporter
	// already reported this post, ErrPostNotFound if the post is unknown.
	File(ctx context.Context, postID, reporterID int64, reason, description string) (*Report, error)

	// Review resolves a report: ActionDismiss sets DISMISSED, anything else
	// sets REVIEWED. Stamps the reviewer and the review time.
	Review(ctx context.Context, reportID, reviewerID int64, action string) (*Report, error)

	// List returns reports filtered by status. "all" returns everything,
	// matching is case-insensitive, and an empty filter means PENDING.
	List(ctx context.Context, statusFilter string) ([]*Report, error)

	// ListByPost returns all reports filed against the post
	ListByPost(ctx context.Context, postID int64) ([]*Report, error)

	// Delete removes a report unconditionally
	Delete(ctx context.Context, id int64) error
}

// Reviewers validates that a reviewing user exists.
type Reviewers interface {
	// Exists reports whether a user with the given id exists
	Exists(ctx context.Context, userID int64) (bool, error)
}

// Repository is the data access interface for reports
type Repository interface {
	// Create inserts a new report. ErrAlreadyReported on the
	// (post, reporter) unique constraint, ErrPostNotFound when the post
	// foreign key fails.
	Create(ctx context.Context, report *Report) (*Report, error)

	// GetByID retrieves a report by id, ErrReportNotFound if unknown
	GetByID(ctx context.Context, id int64) (*Report, error)

	// SetResolution persists status, reviewer and review time
	SetResolution(ctx context.Context, report *Report) (*Report, error)

	// ListAll returns every report, newest first
	ListAll(ctx context.Context) ([]*Report, error)

	// ListByStatus returns reports with the exact status, newest first
	ListByStatus(ctx context.Context, status string) ([]*Report, error)

	// ListByPost returns reports against the post, newest first
	ListByPost(ctx context.Context, postID int64) ([]*Report, error)

	// Delete removes a report, ErrReportNotFound if unknown
	Delete(ctx context.Context, id int64) error
}
