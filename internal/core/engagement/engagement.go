package engagement

import "time"

// Like is the authoritative "liked" relation. Composite identity
// (user, post): at most one row per pair, enforced by the primary key.
// Post.LikeCount is a cached projection of these rows.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// Comment is attached to exactly one post and dies with it. Comments keep
// insertion order and are never reordered.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Text      string    `json:"text" db:"text"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	ID        int64     `json:"id" db:"id"`
}
