package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type reminderService struct {
	repo   Repository
	pets   PetChecker
	logger *slog.Logger
}

// NewService creates a new reminder scheduler service
func NewService(repo Repository, pets PetChecker, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &reminderService{
		repo:   repo,
		pets:   pets,
		logger: logger,
	}
}

func (s *reminderService) Create(ctx context.Context, req CreateRequest) (*Reminder, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleEmpty
	}
	if req.Recurrence == "" {
		req.Recurrence = RecurrenceNone
	}
	if !ValidRecurrence(req.Recurrence) {
		return nil, ErrInvalidRecurrence
	}

	exists, err := s.pets.Exists(ctx, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pet: %w", err)
	}
	if !exists {
		return nil, ErrPetNotFound
	}

	reminder := &Reminder{
		PetID:      req.PetID,
		Title:      req.Title,
		Type:       strings.TrimSpace(req.Type),
		DueAt:      req.DueAt,
		Recurrence: req.Recurrence,
		Completed:  false,
	}

	created, err := s.repo.Create(ctx, reminder)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reminder created",
		"reminder", created.ID,
		"pet", created.PetID,
		"recurrence", created.Recurrence)

	return created, nil
}

func (s *reminderService) ToggleCompletion(ctx context.Context, id int64) (*Reminder, error) {
	reminder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Completing a recurring reminder spawns the next instance in the same
	// transaction. The successor's due date derives from the original due
	// date, never from when the user got around to checking it off.
	if !reminder.Completed && reminder.Recurrence != RecurrenceNone {
		successor := reminder.Successor()
		completed, err := s.repo.CompleteAndSpawn(ctx, id, successor)
		if err != nil {
			return nil, fmt.Errorf("failed to complete recurring reminder: %w", err)
		}

		s.logger.Info("recurring reminder completed, successor spawned",
			"reminder", id,
			"pet", reminder.PetID,
			"nextDue", successor.DueAt)

		return completed, nil
	}

	// Un-completing does not retract an already-spawned successor; the two
	// instances are independent rows from here on.
	updated, err := s.repo.SetCompleted(ctx, id, !reminder.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle reminder: %w", err)
	}

	return updated, nil
}

func (s *reminderService) ListByPet(ctx context.Context, petID int64) ([]*Reminder, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *reminderService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
