package engagement

import (
	"context"

	"Pawhub/internal/core/posts"
)

// Service is the engagement ledger: idempotent like-toggling and comment
// attachment. Both operations return the updated post so callers see the new
// counters without a second read.
type Service interface {
	// ToggleLike flips the (user, post) like. Applying it twice returns the
	// post to its original like state and count.
	ToggleLike(ctx context.Context, postID, userID int64) (*posts.Post, error)

	// AddComment appends a comment to the post
	AddComment(ctx context.Context, postID, authorID int64, text string) (*posts.Post, error)

	// ListComments returns the post's comments in insertion order
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)

	// Liked reports whether the user currently likes the post
	Liked(ctx context.Context, postID, userID int64) (bool, error)
}

// Repository is the data access interface for likes and comments.
//
// ToggleLike and InsertComment run the relation write and the cached counter
// update inside a single transaction so the counter can never drift from the
// relation, and concurrent toggles on the same (user, post) pair serialize on
// the post row lock instead of double-inserting.
type Repository interface {
	// ToggleLike inserts or deletes the like row, adjusts the post's
	// like_count in lockstep (floored at zero) and returns the updated post.
	// ErrPostNotFound if the post doesn't exist.
	ToggleLike(ctx context.Context, postID, userID int64) (*posts.Post, error)

	// InsertComment appends a comment, bumps the post's comment_count and
	// returns the updated post. ErrPostNotFound if the post doesn't exist.
	InsertComment(ctx context.Context, comment *Comment) (*posts.Post, error)

	// ListCommentsByPost returns comments in insertion order (id asc)
	ListCommentsByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// HasLike reports whether a like row exists for (user, post)
	HasLike(ctx context.Context, postID, userID int64) (bool, error)
}
