package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when a create collides with the unique username index.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the login name is already registered.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new user entity and assigns its generated id.
	Create(ctx context.Context, user *entity.User) error
}
