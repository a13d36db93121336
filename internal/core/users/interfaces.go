package users

import "context"

// Service is the identity boundary exposed to the rest of Pawhub.
// Credential verification is an opaque predicate: callers get a user back or
// ErrInvalidCredentials, never hashes or tokens.
type Service interface {
	// GetByID retrieves a user by id, ErrUserNotFound if unknown
	GetByID(ctx context.Context, id int64) (*User, error)

	// Register creates a new account, ErrEmailTaken on duplicate email
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Authenticate verifies credentials and returns the matching user
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// CanModerate reports whether the user with the given id holds a
	// moderator role. ErrUserNotFound if the id is unknown.
	CanModerate(ctx context.Context, userID int64) (bool, error)
}

// Repository is the data access interface for users
type Repository interface {
	// Create inserts a new user with the given bcrypt password hash
	Create(ctx context.Context, user *User, passwordHash string) (*User, error)

	// GetByID retrieves a user by id, ErrUserNotFound if unknown
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user and their password hash by email,
	// ErrUserNotFound if unknown
	GetByEmail(ctx context.Context, email string) (*User, string, error)
}
