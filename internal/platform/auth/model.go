// Package auth owns the session lifecycle: user login, JWT issuance,
// revocation on logout, and the request middleware. The rest of the system
// sees only an authenticated identity and a logout capability; nothing
// outside this package inspects session internals.
package auth

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is a staff account allowed to sign in to the admin console.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
