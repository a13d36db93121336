package reports

import "time"

// Report statuses. A report starts PENDING and a moderator moves it to
// REVIEWED or DISMISSED. Reviewing a report never changes the target post's
// moderation state; a report is evidence, not a verdict.
const (
	StatusPending   = "PENDING"
	StatusReviewed  = "REVIEWED"
	StatusDismissed = "DISMISSED"
)

// Review actions accepted by Review
const (
	ActionDismiss = "dismiss"
	ActionUphold  = "uphold"
)

// Reasons a post can be reported for
const (
	ReasonSpam           = "spam"
	ReasonHarassment     = "harassment"
	ReasonInappropriate  = "inappropriate"
	ReasonMisinformation = "misinformation"
	ReasonOther          = "other"
)

// Report is an abuse report against a post. At most one report per
// (post, reporter) pair; a second attempt is rejected, not merged.
type Report struct {
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty" db:"reviewed_at"`
	Reason      string     `json:"reason" db:"reason"`
	Description string     `json:"description,omitempty" db:"description"`
	Status      string     `json:"status" db:"status"`
	ReviewedBy  *int64     `json:"reviewedBy,omitempty" db:"reviewed_by"`
	PostID      int64      `json:"postId" db:"post_id"`
	ReporterID  int64      `json:"reporterId" db:"reporter_id"`
	ID          int64      `json:"id" db:"id"`
}

// ValidReason reports whether reason is one of the enumerated values
func ValidReason(reason string) bool {
	switch reason {
	case ReasonSpam, ReasonHarassment, ReasonInappropriate, ReasonMisinformation, ReasonOther:
		return true
	}
	return false
}
