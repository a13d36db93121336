package users

import (
	"time"
)

// Roles recognized by the capability checks.
// "Admin" grants moderation rights; every other value is a regular member.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// User is an account tracked by the identity store.
// Pawhub references users from posts, comments, reports and notifications
// but never owns them.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	ID        int64     `json:"id" db:"id"`
}

// CanModerate reports whether the user may approve/reject posts and delete
// other users' content. Single place for the role check so callers never
// re-derive it from the Role string.
func CanModerate(u *User) bool {
	return u != nil && u.Role == RoleAdmin
}

// RegisterRequest is the input for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the input for credential verification.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
