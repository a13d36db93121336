package reports

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type reportService struct {
	repo      Repository
	reviewers Reviewers
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new report triage service
func NewService(repo Repository, reviewers Reviewers, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &reportService{
		repo:      repo,
		reviewers: reviewers,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *reportService) File(ctx context.Context, postID, reporterID int64, reason, description string) (*Report, error) {
	reason = strings.ToLower(strings.TrimSpace(reason))
	if !ValidReason(reason) {
		return nil, ErrInvalidReason
	}

	report := &Report{
		PostID:      postID,
		ReporterID:  reporterID,
		Reason:      reason,
		Description: strings.TrimSpace(description),
		Status:      StatusPending,
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		return nil, err
	}

	s.logger.Info("report filed",
		"report", created.ID,
		"post", postID,
		"reporter", reporterID,
		"reason", reason)

	return created, nil
}

func (s *reportService) Review(ctx context.Context, reportID, reviewerID int64, action string) (*Report, error) {
	report, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviewers.Exists(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reviewer: %w", err)
	}
	if !exists {
		return nil, ErrReviewerNotFound
	}

	// Dismiss is explicit; every other action upholds the report
	if strings.EqualFold(action, ActionDismiss) {
		report.Status = StatusDismissed
	} else {
		report.Status = StatusReviewed
	}

	reviewedAt := s.now()
	report.ReviewedBy = &reviewerID
	report.ReviewedAt = &reviewedAt

	resolved, err := s.repo.SetResolution(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve report: %w", err)
	}

	s.logger.Info("report reviewed",
		"report", reportID,
		"reviewer", reviewerID,
		"status", resolved.Status)

	return resolved, nil
}

func (s *reportService) List(ctx context.Context, statusFilter string) ([]*Report, error) {
	statusFilter = strings.TrimSpace(statusFilter)
	if statusFilter == "" {
		statusFilter = StatusPending
	}
	if strings.EqualFold(statusFilter, "all") {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByStatus(ctx, strings.ToUpper(statusFilter))
}

func (s *reportService) ListByPost(ctx context.Context, postID int64) ([]*Report, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *reportService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
