package posts

import (
	"time"
)

// Status is the moderation state of a post.
// Transitions: PENDING -> APPROVED, PENDING -> REJECTED. A repeated moderator
// action on a decided post is a no-op self-loop; nothing in the core re-opens
// a decided post.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Sort keys accepted by ListVisible. Ties are broken by id so ordering is
// stable across calls.
const (
	SortNewest  = "newest"  // created_at desc
	SortPopular = "popular" // like_count desc
	SortHot     = "hot"     // comment_count desc
	SortViews   = "views"   // view_count desc
)

// Post is a community post. LikeCount and CommentCount are cached projections
// of the likes and comments relations; every mutation path updates the counter
// and the relation inside one transaction.
type Post struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	Category     string    `json:"category,omitempty" db:"category"`
	Status       Status    `json:"status" db:"status"`
	AuthorID     int64     `json:"authorId" db:"author_id"`
	ID           int64     `json:"id" db:"id"`
	ViewCount    int       `json:"views" db:"view_count"`
	LikeCount    int       `json:"likes" db:"like_count"`
	CommentCount int       `json:"commentCount" db:"comment_count"`
}

// SubmitRequest is the input for submitting a new post
type SubmitRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
	AuthorID int64  `json:"authorId"`
}

// UpdateRequest is the input for editing a post. Only title, content and
// category are mutable; category is left untouched when nil.
type UpdateRequest struct {
	Category *string `json:"category,omitempty"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
}
