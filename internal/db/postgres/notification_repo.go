package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Pawhub/internal/core/notifications"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

const notificationColumns = `
	id, user_id, message, type, link, is_read, created_at`

func scanNotification(row interface{ Scan(...any) error }) (*notifications.Notification, error) {
	var n notifications.Notification
	err := row.Scan(
		&n.ID, &n.UserID, &n.Message, &n.Type, &n.Link, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *postgresNotificationRepo) Create(ctx context.Context, n *notifications.Notification) (*notifications.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, message, type, link, is_read, created_at)
		VALUES ($1, $2, $3, $4, false, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		n.UserID, n.Message, n.Type, n.Link,
	).Scan(&n.ID, &n.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return n, nil
}

func (r *postgresNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]*notifications.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectNotifications(rows)
}

func (r *postgresNotificationRepo) ListUnreadByUser(ctx context.Context, userID int64) ([]*notifications.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND is_read = false
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectNotifications(rows)
}

func (r *postgresNotificationRepo) CountUnread(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *postgresNotificationRepo) MarkRead(ctx context.Context, id int64) (*notifications.Notification, error) {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1
		RETURNING` + notificationColumns

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, notifications.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return n, nil
}

func (r *postgresNotificationRepo) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *postgresNotificationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return notifications.ErrNotificationNotFound
	}

	return nil
}

func collectNotifications(rows *sql.Rows) ([]*notifications.Notification, error) {
	var result []*notifications.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		result = append(result, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return result, nil
}
