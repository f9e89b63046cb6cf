package repository

import (
	"context"

	"sigtransportes/internal/model"
)

// UserRepository defines data access for users. No business logic here —
// strictly persistence operations. Passwords arrive already hashed.
type UserRepository interface {
	// Create inserts a new user row and returns it with the assigned ID.
	// Returns ErrUsernameExists if the username is already present; the
	// Users table is left unchanged in that case.
	Create(ctx context.Context, username, passwordHash, role string) (*model.User, error)

	// FindByUsername returns the user with the given username, or
	// ErrUserNotFound if no row matches.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
