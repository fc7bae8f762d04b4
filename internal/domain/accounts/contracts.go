package accounts

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when a login attempt fails, without
// distinguishing an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("accounts: invalid credentials")

// AccountService defines authentication and user lookup operations.
type AccountService interface {
	// Authenticate verifies a username/password pair.
	// It returns the matching User or ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, userID string) (*User, error)

	// Register creates a new user with the given plain-text password and
	// permission set. It returns the created User.
	Register(ctx context.Context, username, password string, permissions []string) (*User, error)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
