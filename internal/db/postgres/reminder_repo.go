package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"Pawhub/internal/core/reminders"
)

type postgresReminderRepo struct {
	db *sql.DB
}

// NewReminderRepository creates a new PostgreSQL reminder repository
func NewReminderRepository(db *sql.DB) reminders.Repository {
	return &postgresReminderRepo{db: db}
}

const reminderColumns = `
	id, pet_id, title, type, due_at, recurrence, completed, created_at`

func scanReminder(row interface{ Scan(...any) error }) (*reminders.Reminder, error) {
	var reminder reminders.Reminder
	err := row.Scan(
		&reminder.ID, &reminder.PetID, &reminder.Title, &reminder.Type,
		&reminder.DueAt, &reminder.Recurrence, &reminder.Completed,
		&reminder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *postgresReminderRepo) Create(ctx context.Context, reminder *reminders.Reminder) (*reminders.Reminder, error) {
	query := `
		INSERT INTO reminders (pet_id, title, type, due_at, recurrence, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		reminder.PetID, reminder.Title, reminder.Type,
		reminder.DueAt, reminder.Recurrence, reminder.Completed,
	).Scan(&reminder.ID, &reminder.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "reminders_pet_id_fkey") {
			return nil, reminders.ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to insert reminder: %w", err)
	}

	return reminder, nil
}

func (r *postgresReminderRepo) GetByID(ctx context.Context, id int64) (*reminders.Reminder, error) {
	query := `SELECT` + reminderColumns + ` FROM reminders WHERE id = $1`

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, reminders.ErrReminderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder by id: %w", err)
	}

	return reminder, nil
}

func (r *postgresReminderRepo) SetCompleted(ctx context.Context, id int64, completed bool) (*reminders.Reminder, error) {
	query := `
		UPDATE reminders
		SET completed = $2
		WHERE id = $1
		RETURNING` + reminderColumns

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, id, completed))
	if err == sql.ErrNoRows {
		return nil, reminders.ErrReminderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set reminder completion: %w", err)
	}

	return reminder, nil
}

// CompleteAndSpawn marks the original completed and inserts the successor in
// one transaction. The completion carries a completed = false guard so the
// service's read-then-spawn decision cannot race: of two concurrent toggles
// only one matches the guard and spawns, the loser degenerates into a plain
// un-complete flip with no second successor.
func (r *postgresReminderRepo) CompleteAndSpawn(ctx context.Context, id int64, successor *reminders.Reminder) (*reminders.Reminder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	completed, err := scanReminder(tx.QueryRowContext(ctx, `
		UPDATE reminders
		SET completed = true
		WHERE id = $1 AND completed = false
		RETURNING`+reminderColumns, id))
	if err == sql.ErrNoRows {
		// Already completed by a concurrent toggle (or gone). The toggle
		// semantics still hold: flip it back instead of spawning again.
		flipped, flipErr := scanReminder(tx.QueryRowContext(ctx, `
			UPDATE reminders
			SET completed = false
			WHERE id = $1
			RETURNING`+reminderColumns, id))
		if flipErr == sql.ErrNoRows {
			return nil, reminders.ErrReminderNotFound
		}
		if flipErr != nil {
			return nil, fmt.Errorf("failed to toggle completed reminder: %w", flipErr)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return flipped, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete reminder: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reminders (pet_id, title, type, due_at, recurrence, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, false, NOW())
		RETURNING id, created_at`,
		successor.PetID, successor.Title, successor.Type,
		successor.DueAt, successor.Recurrence,
	).Scan(&successor.ID, &successor.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn successor reminder: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return completed, nil
}

func (r *postgresReminderRepo) ListByPet(ctx context.Context, petID int64) ([]*reminders.Reminder, error) {
	query := `SELECT` + reminderColumns + `
		FROM reminders
		WHERE pet_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders by pet: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*reminders.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		result = append(result, reminder)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}

	return result, nil
}

// Delete removes one reminder row. Spawned successors are independent rows
// and stay behind.
func (r *postgresReminderRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return reminders.ErrReminderNotFound
	}

	return nil
}
