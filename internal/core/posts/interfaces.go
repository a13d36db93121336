package posts

import "context"

// Capabilities answers role questions for the lifecycle engine. Injected so
// the admin-vs-owner branching lives in one place instead of being re-derived
// per operation.
type Capabilities interface {
	// CanModerate reports whether the user may approve/reject posts and
	// delete other users' content
	CanModerate(ctx context.Context, userID int64) (bool, error)
}

// Service is the post lifecycle engine: submission, moderation, view counting
// and visibility queries.
type Service interface {
	// Submit creates a new post. Posts by moderators are auto-approved;
	// everyone else starts PENDING.
	Submit(ctx context.Context, req SubmitRequest) (*Post, error)

	// Get retrieves a post by id, ErrPostNotFound if unknown
	Get(ctx context.Context, id int64) (*Post, error)

	// Approve transitions a PENDING post to APPROVED. Repeating a moderator
	// decision is a no-op re-save.
	Approve(ctx context.Context, id int64) (*Post, error)

	// Reject transitions a PENDING post to REJECTED
	Reject(ctx context.Context, id int64) (*Post, error)

	// RecordView increments the post's view counter by exactly one
	RecordView(ctx context.Context, id int64) (*Post, error)

	// ListVisible returns APPROVED posts plus, when callerID is non-nil, the
	// caller's own posts regardless of status. Sort is one of the Sort*
	// constants; unknown values fall back to newest.
	ListVisible(ctx context.Context, callerID *int64, sort string) ([]*Post, error)

	// ListByAuthor returns all posts by the given author, newest first
	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)

	// ListPending returns the moderation queue, newest first
	ListPending(ctx context.Context) ([]*Post, error)

	// Update edits title/content/category. Author only.
	Update(ctx context.Context, id, actorID int64, req UpdateRequest) (*Post, error)

	// Delete removes a post and cascades to its comments, reports and likes.
	// Allowed for the author or a moderator.
	Delete(ctx context.Context, id, actorID int64) error
}

// Repository is the data access interface for posts
type Repository interface {
	// Create inserts a new post and fills in its id and created_at
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post by id, ErrPostNotFound if unknown
	GetByID(ctx context.Context, id int64) (*Post, error)

	// SetStatus updates the moderation status, ErrPostNotFound if unknown
	SetStatus(ctx context.Context, id int64, status Status) (*Post, error)

	// IncrementViews atomically bumps view_count by one, ErrPostNotFound if
	// unknown
	IncrementViews(ctx context.Context, id int64) (*Post, error)

	// UpdateContent persists title/content/category edits
	UpdateContent(ctx context.Context, post *Post) (*Post, error)

	// Delete removes a post; comments, reports and likes go with it
	Delete(ctx context.Context, id int64) error

	// ListVisible returns approved posts, plus the caller's own when callerID
	// is non-nil, ordered by the given sort key with id as tiebreak
	ListVisible(ctx context.Context, callerID *int64, sort string) ([]*Post, error)

	// ListByAuthor returns all posts by the author, newest first
	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)

	// ListByStatus returns all posts with the given status, newest first
	ListByStatus(ctx context.Context, status Status) ([]*Post, error)
}
