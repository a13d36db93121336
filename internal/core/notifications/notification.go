package notifications

import "time"

// Notification types. POST_APPROVED and NEW_COMMENT are emitted at the seams
// of the post lifecycle and engagement engines; REMINDER_DUE and SYSTEM are
// reserved for callers outside the core.
const (
	TypePostApproved = "POST_APPROVED"
	TypeNewComment   = "NEW_COMMENT"
	TypeReminderDue  = "REMINDER_DUE"
	TypeSystem       = "SYSTEM"
)

// maxMessageLength caps the stored message text
const maxMessageLength = 500

// Notification is one entry in a user's append-only message log. Only the
// Read flag ever changes after insert.
type Notification struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Message   string    `json:"message" db:"message"`
	Type      string    `json:"type" db:"type"`
	Link      *string   `json:"link,omitempty" db:"link"`
	UserID    int64     `json:"userId" db:"user_id"`
	ID        int64     `json:"id" db:"id"`
	Read      bool      `json:"read" db:"read"`
}
