package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Pawhub/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postColumns = `
	id, title, content, category, status, author_id,
	view_count, like_count, comment_count, created_at`

func scanPost(row interface{ Scan(...any) error }) (*posts.Post, error) {
	var post posts.Post
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.Category, &post.Status,
		&post.AuthorID, &post.ViewCount, &post.LikeCount, &post.CommentCount,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (title, content, category, status, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Category, post.Status, post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepo) SetStatus(ctx context.Context, id int64, status posts.Status) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET status = $2
		WHERE id = $1
		RETURNING` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, status))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set post status: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepo) IncrementViews(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET view_count = view_count + 1
		WHERE id = $1
		RETURNING` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment view count: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepo) UpdateContent(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, content = $3, category = $4
		WHERE id = $1
		RETURNING` + postColumns

	updated, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, post.Category))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// Delete removes the post. Comments, reports and likes are removed by the
// ON DELETE CASCADE foreign keys.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// orderClause maps a sort key to SQL. Every ordering carries "id DESC" as a
// tiebreak so repeated calls return the same order for equal keys.
func orderClause(sort string) string {
	switch sort {
	case posts.SortPopular:
		return "ORDER BY like_count DESC, id DESC"
	case posts.SortHot:
		return "ORDER BY comment_count DESC, id DESC"
	case posts.SortViews:
		return "ORDER BY view_count DESC, id DESC"
	default:
		return "ORDER BY created_at DESC, id DESC"
	}
}

func (r *postgresPostRepo) ListVisible(ctx context.Context, callerID *int64, sort string) ([]*posts.Post, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if callerID != nil {
		query := `SELECT` + postColumns + `
			FROM posts
			WHERE status = $1 OR author_id = $2 ` + orderClause(sort)
		rows, err = r.db.QueryContext(ctx, query, posts.StatusApproved, *callerID)
	} else {
		query := `SELECT` + postColumns + `
			FROM posts
			WHERE status = $1 ` + orderClause(sort)
		rows, err = r.db.QueryContext(ctx, query, posts.StatusApproved)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list visible posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectPosts(rows)
}

func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + `
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectPosts(rows)
}

func (r *postgresPostRepo) ListByStatus(ctx context.Context, status posts.Status) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + `
		FROM posts
		WHERE status = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by status: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]*posts.Post, error) {
	var result []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}
