package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type postService struct {
	repo   Repository
	caps   Capabilities
	logger *slog.Logger
}

// NewService creates a new post lifecycle service
func NewService(repo Repository, caps Capabilities, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:   repo,
		caps:   caps,
		logger: logger,
	}
}

func (s *postService) Submit(ctx context.Context, req SubmitRequest) (*Post, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if req.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "content is required")
	}

	// Moderator submissions skip the queue
	elevated, err := s.caps.CanModerate(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check author role: %w", err)
	}

	status := StatusPending
	if elevated {
		status = StatusApproved
	}

	post := &Post{
		Title:    req.Title,
		Content:  req.Content,
		Category: strings.TrimSpace(req.Category),
		AuthorID: req.AuthorID,
		Status:   status,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post submitted",
		"post", created.ID,
		"author", created.AuthorID,
		"status", created.Status)

	return created, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) Approve(ctx context.Context, id int64) (*Post, error) {
	return s.decide(ctx, id, StatusApproved)
}

func (s *postService) Reject(ctx context.Context, id int64) (*Post, error) {
	return s.decide(ctx, id, StatusRejected)
}

// decide applies a moderator decision. Repeating the same decision is a
// self-loop no-op; a moderator may also move a decided post to the other
// terminal state (re-action), but decided posts never return to PENDING.
func (s *postService) decide(ctx context.Context, id int64, status Status) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Status == status {
		return post, nil
	}

	updated, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to set post status: %w", err)
	}

	s.logger.Info("post moderated",
		"post", id,
		"from", post.Status,
		"to", status)

	return updated, nil
}

func (s *postService) RecordView(ctx context.Context, id int64) (*Post, error) {
	return s.repo.IncrementViews(ctx, id)
}

func (s *postService) ListVisible(ctx context.Context, callerID *int64, sort string) ([]*Post, error) {
	switch sort {
	case SortNewest, SortPopular, SortHot, SortViews:
	default:
		sort = SortNewest
	}
	return s.repo.ListVisible(ctx, callerID, sort)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *postService) ListPending(ctx context.Context) ([]*Post, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *postService) Update(ctx context.Context, id, actorID int64, req UpdateRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Edits are author-only; moderators moderate, they don't rewrite
	if post.AuthorID != actorID {
		return nil, ErrNotAuthorized
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "content is required")
	}

	post.Title = req.Title
	post.Content = req.Content
	if req.Category != nil {
		post.Category = strings.TrimSpace(*req.Category)
	}

	updated, err := s.repo.UpdateContent(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id, actorID int64) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		elevated, err := s.caps.CanModerate(ctx, actorID)
		if err != nil {
			return fmt.Errorf("failed to check actor role: %w", err)
		}
		if !elevated {
			return ErrNotAuthorized
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted", "post", id, "actor", actorID)
	return nil
}
