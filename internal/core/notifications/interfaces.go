package notifications

import "context"

// Service is the notification sink: an append-only per-user message log with
// read/unread state. Notify is the only write path besides read-state flips
// and deletes.
type Service interface {
	// Notify appends a new unread notification for the user
	Notify(ctx context.Context, userID int64, message, notifType string, link *string) (*Notification, error)

	// ListForUser returns all notifications for the user, newest first
	ListForUser(ctx context.Context, userID int64) ([]*Notification, error)

	// ListUnread returns unread notifications for the user, newest first
	ListUnread(ctx context.Context, userID int64) ([]*Notification, error)

	// UnreadCount returns the number of unread notifications for the user
	UnreadCount(ctx context.Context, userID int64) (int, error)

	// MarkRead flips a single notification to read,
	// ErrNotificationNotFound if unknown
	MarkRead(ctx context.Context, id int64) (*Notification, error)

	// MarkAllRead flips every unread notification for the user to read
	MarkAllRead(ctx context.Context, userID int64) error

	// Delete removes a notification unconditionally
	Delete(ctx context.Context, id int64) error
}

// Repository is the data access interface for notifications
type Repository interface {
	Create(ctx context.Context, n *Notification) (*Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]*Notification, error)
	ListUnreadByUser(ctx context.Context, userID int64) ([]*Notification, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, id int64) (*Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
}
