package notifications

import (
	"context"
	"log/slog"
	"strings"
)

type notificationService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new notification sink service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationService{repo: repo, logger: logger}
}

func validType(notifType string) bool {
	switch notifType {
	case TypePostApproved, TypeNewComment, TypeReminderDue, TypeSystem:
		return true
	}
	return false
}

func (s *notificationService) Notify(ctx context.Context, userID int64, message, notifType string, link *string) (*Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageEmpty
	}
	if len(message) > maxMessageLength {
		return nil, ErrMessageTooLong
	}
	if !validType(notifType) {
		return nil, ErrInvalidType
	}

	n := &Notification{
		UserID:  userID,
		Message: message,
		Type:    notifType,
		Link:    link,
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("notification appended",
		"notification", created.ID,
		"user", userID,
		"type", notifType)

	return created, nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID int64) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *notificationService) ListUnread(ctx context.Context, userID int64) ([]*Notification, error) {
	return s.repo.ListUnreadByUser(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) (*Notification, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
