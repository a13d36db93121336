package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"Pawhub/internal/core/reminders"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestPet inserts a pet row for the given owner
func createTestPet(t *testing.T, db *sql.DB, ownerID int64) int64 {
	var id int64
	err := db.QueryRow(`
		INSERT INTO pets (name, species, owner_id)
		VALUES ('Repo Test Pet', 'dog', $1)
		RETURNING id`, ownerID).Scan(&id)
	require.NoError(t, err, "Failed to create test pet")
	return id
}

func createWeeklyReminder(t *testing.T, repo reminders.Repository, petID int64) *reminders.Reminder {
	reminder, err := repo.Create(context.Background(), &reminders.Reminder{
		PetID:      petID,
		Title:      "Repo test reminder",
		Type:       "medication",
		DueAt:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: reminders.RecurrenceWeekly,
	})
	require.NoError(t, err)
	return reminder
}

func TestReminderRepo_CompleteAndSpawn_CompletesAndInsertsSuccessor(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	repo := NewReminderRepository(db)
	ctx := context.Background()

	ownerID := createTestUser(t, db, "repo_test_owner@example.com")
	petID := createTestPet(t, db, ownerID)
	reminder := createWeeklyReminder(t, repo, petID)

	completed, err := repo.CompleteAndSpawn(ctx, reminder.ID, reminder.Successor())
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	all, err := repo.ListByPet(ctx, petID)
	require.NoError(t, err)
	require.Len(t, all, 2)

	successor := all[1]
	assert.False(t, successor.Completed)
	assert.Equal(t, reminder.Title, successor.Title)
	assert.Equal(t, time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), successor.DueAt.UTC())
}

func TestReminderRepo_CompleteAndSpawn_AlreadyCompletedFlipsWithoutSpawning(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	repo := NewReminderRepository(db)
	ctx := context.Background()

	ownerID := createTestUser(t, db, "repo_test_owner2@example.com")
	petID := createTestPet(t, db, ownerID)
	reminder := createWeeklyReminder(t, repo, petID)

	_, err := repo.CompleteAndSpawn(ctx, reminder.ID, reminder.Successor())
	require.NoError(t, err)

	// A second complete-and-spawn on the same instance models the loser of a
	// concurrent double-toggle: the guard must flip it back and refuse to
	// spawn a second successor.
	flipped, err := repo.CompleteAndSpawn(ctx, reminder.ID, reminder.Successor())
	require.NoError(t, err)
	assert.False(t, flipped.Completed)

	all, err := repo.ListByPet(ctx, petID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReminderRepo_CompleteAndSpawn_UnknownReminder(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	repo := NewReminderRepository(db)

	_, err := repo.CompleteAndSpawn(context.Background(), -1, &reminders.Reminder{
		PetID: 1,
		Title: "orphan",
		DueAt: time.Now(),
	})
	assert.ErrorIs(t, err, reminders.ErrReminderNotFound)
}
