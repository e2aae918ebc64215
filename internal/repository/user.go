package repository

import (
	"context"
	"errors"

	"docshare/internal/model"
)

// ErrDuplicate is returned by Create operations when a uniqueness constraint
// is violated. Implementations translate their driver-specific error into it.
var ErrDuplicate = errors.New("duplicate row")

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a new user. A username collision is reported as
	// ErrDuplicate (wrapped).
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByUsername returns a user by username. Missing rows surface as
	// sql.ErrNoRows.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
