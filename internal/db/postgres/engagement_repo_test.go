package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"Pawhub/internal/core/engagement"
	"Pawhub/internal/core/posts"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a test database connection and runs migrations.
// Skipped entirely when no test database is configured.
func setupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.Ping(), "Failed to ping test database")

	require.NoError(t, goose.SetDialect("postgres"), "Failed to set goose dialect")
	require.NoError(t, goose.Up(db, "../migrations"), "Failed to run migrations")

	return db
}

// cleanupTestRows removes test users; posts, pets, likes, comments, reports,
// reminders and notifications go with them via the cascade rules.
func cleanupTestRows(t *testing.T, db *sql.DB) {
	_, err := db.Exec("DELETE FROM users WHERE email LIKE 'repo_test_%'")
	require.NoError(t, err, "Failed to cleanup test users")
}

// createTestUser inserts a minimal user row for foreign key constraints
func createTestUser(t *testing.T, db *sql.DB, email string) int64 {
	var id int64
	err := db.QueryRow(`
		INSERT INTO users (email, name, role, password_hash)
		VALUES ($1, 'Repo Test', 'Member', 'x')
		RETURNING id`, email).Scan(&id)
	require.NoError(t, err, "Failed to create test user")
	return id
}

// createTestPost inserts an approved post for the given author
func createTestPost(t *testing.T, db *sql.DB, authorID int64) int64 {
	var id int64
	err := db.QueryRow(`
		INSERT INTO posts (title, content, status, author_id)
		VALUES ('repo test post', 'body', 'APPROVED', $1)
		RETURNING id`, authorID).Scan(&id)
	require.NoError(t, err, "Failed to create test post")
	return id
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestEngagementRepo_ToggleLike_CounterMatchesRows(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	repo := NewEngagementRepository(db)
	ctx := context.Background()

	authorID := createTestUser(t, db, "repo_test_author@example.com")
	likerID := createTestUser(t, db, "repo_test_liker@example.com")
	postID := createTestPost(t, db, authorID)

	post, err := repo.ToggleLike(ctx, postID, likerID)
	require.NoError(t, err)
	assert.Equal(t, 1, post.LikeCount)
	assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM likes WHERE post_id = $1", postID))

	// Second toggle removes the row and the counter in lockstep
	post, err = repo.ToggleLike(ctx, postID, likerID)
	require.NoError(t, err)
	assert.Equal(t, 0, post.LikeCount)
	assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM likes WHERE post_id = $1", postID))
}

func TestEngagementRepo_ToggleLike_UnknownPost(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	repo := NewEngagementRepository(db)

	likerID := createTestUser(t, db, "repo_test_liker2@example.com")

	_, err := repo.ToggleLike(context.Background(), -1, likerID)
	assert.ErrorIs(t, err, engagement.ErrPostNotFound)
}

func TestEngagementRepo_InsertComment_CounterMatchesRows(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	repo := NewEngagementRepository(db)
	ctx := context.Background()

	authorID := createTestUser(t, db, "repo_test_author2@example.com")
	commenterID := createTestUser(t, db, "repo_test_commenter@example.com")
	postID := createTestPost(t, db, authorID)

	var post *posts.Post
	for i := 0; i < 2; i++ {
		var err error
		post, err = repo.InsertComment(ctx, &engagement.Comment{
			PostID:   postID,
			AuthorID: commenterID,
			Text:     "repo test comment",
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, post.CommentCount)
	assert.Equal(t, 2, countRows(t, db, "SELECT COUNT(*) FROM comments WHERE post_id = $1", postID))
}

func TestEngagementRepo_InsertComment_UnknownPost(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	repo := NewEngagementRepository(db)

	commenterID := createTestUser(t, db, "repo_test_commenter2@example.com")

	_, err := repo.InsertComment(context.Background(), &engagement.Comment{
		PostID:   -1,
		AuthorID: commenterID,
		Text:     "orphan",
	})
	assert.ErrorIs(t, err, engagement.ErrPostNotFound)
}
