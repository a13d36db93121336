package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Pawhub/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

func (r *postgresUserRepo) Create(ctx context.Context, user *users.User, passwordHash string) (*users.User, error) {
	query := `
		INSERT INTO users (email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.Role, passwordHash,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `
		SELECT id, email, name, role, created_at
		FROM users
		WHERE id = $1
	`

	var user users.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, string, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var user users.User
	var hash string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.Role, &hash, &user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, "", users.ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, hash, nil
}
