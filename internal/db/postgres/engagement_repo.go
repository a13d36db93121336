package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"Pawhub/internal/core/engagement"
	"Pawhub/internal/core/posts"
)

type postgresEngagementRepo struct {
	db *sql.DB
}

// NewEngagementRepository creates a new PostgreSQL likes/comments repository
func NewEngagementRepository(db *sql.DB) engagement.Repository {
	return &postgresEngagementRepo{db: db}
}

// ToggleLike atomically flips the (user, post) like and its cached counter.
// Locking the post row first serializes concurrent toggles from the same user
// so both can't observe "not liked" and double-insert.
func (r *postgresEngagementRepo) ToggleLike(ctx context.Context, postID, userID int64) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	var postExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT true FROM posts WHERE id = $1 FOR UPDATE`, postID,
	).Scan(&postExists)
	if err == sql.ErrNoRows {
		return nil, engagement.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock post: %w", err)
	}

	var liked bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`,
		userID, postID,
	).Scan(&liked)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing like: %w", err)
	}

	if liked {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM likes WHERE user_id = $1 AND post_id = $2`,
			userID, postID,
		); err != nil {
			return nil, fmt.Errorf("failed to delete like: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE posts SET like_count = GREATEST(like_count - 1, 0) WHERE id = $1`,
			postID,
		); err != nil {
			return nil, fmt.Errorf("failed to decrement like count: %w", err)
		}
	} else {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO likes (user_id, post_id, created_at) VALUES ($1, $2, NOW())`,
			userID, postID,
		); err != nil {
			return nil, fmt.Errorf("failed to insert like: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE posts SET like_count = like_count + 1 WHERE id = $1`,
			postID,
		); err != nil {
			return nil, fmt.Errorf("failed to increment like count: %w", err)
		}
	}

	post, err := scanPost(tx.QueryRowContext(ctx,
		`SELECT`+postColumns+` FROM posts WHERE id = $1`, postID))
	if err != nil {
		return nil, fmt.Errorf("failed to reload post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

// InsertComment appends the comment and bumps the post's cached comment_count
// inside one transaction.
func (r *postgresEngagementRepo) InsertComment(ctx context.Context, comment *engagement.Comment) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	query := `
		INSERT INTO comments (post_id, author_id, text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorID, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "comments_post_id_fkey") {
			return nil, engagement.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	post, err := scanPost(tx.QueryRowContext(ctx, `
		UPDATE posts
		SET comment_count = comment_count + 1
		WHERE id = $1
		RETURNING`+postColumns, comment.PostID))
	if err == sql.ErrNoRows {
		return nil, engagement.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

func (r *postgresEngagementRepo) ListCommentsByPost(ctx context.Context, postID int64) ([]*engagement.Comment, error) {
	query := `
		SELECT id, post_id, author_id, text, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*engagement.Comment
	for rows.Next() {
		var comment engagement.Comment
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.Text, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

func (r *postgresEngagementRepo) HasLike(ctx context.Context, postID, userID int64) (bool, error) {
	var liked bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`,
		userID, postID,
	).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return liked, nil
}
