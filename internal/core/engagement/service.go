package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"Pawhub/internal/core/notifications"
	"Pawhub/internal/core/posts"
)

type engagementService struct {
	repo     Repository
	notifier notifications.Service
	logger   *slog.Logger
}

// NewService creates a new engagement service. notifier may be nil, in which
// case no NEW_COMMENT notifications are emitted.
func NewService(repo Repository, notifier notifications.Service, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &engagementService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *engagementService) ToggleLike(ctx context.Context, postID, userID int64) (*posts.Post, error) {
	post, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("like toggled",
		"post", postID,
		"user", userID,
		"likes", post.LikeCount)

	return post, nil
}

func (s *engagementService) AddComment(ctx context.Context, postID, authorID int64, text string) (*posts.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextEmpty
	}

	comment := &Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	post, err := s.repo.InsertComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment added",
		"post", postID,
		"author", authorID,
		"comments", post.CommentCount)

	// Seam to the notification sink: best effort, outside the comment
	// transaction, never to the commenter themselves.
	if s.notifier != nil && post.AuthorID != authorID {
		link := fmt.Sprintf("/posts/%d", postID)
		_, err := s.notifier.Notify(ctx, post.AuthorID,
			fmt.Sprintf("New comment on your post %q", post.Title),
			notifications.TypeNewComment, &link)
		if err != nil {
			s.logger.Warn("failed to notify post author of new comment",
				"post", postID,
				"author", post.AuthorID,
				"error", err)
		}
	}

	return post, nil
}

func (s *engagementService) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	return s.repo.ListCommentsByPost(ctx, postID)
}

func (s *engagementService) Liked(ctx context.Context, postID, userID int64) (bool, error) {
	return s.repo.HasLike(ctx, postID, userID)
}
