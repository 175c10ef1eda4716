package storage

import (
	"context"

	"github.com/vploshikov/gocrm/internal/models"
)

// UserStorage defines interface for the credential store.
type UserStorage interface {
	// CreateUser inserts a new user and fills in its assigned ID.
	// Returns ErrUserAlreadyExists when the email or phone is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByIdentifier retrieves a user whose email or phone equals
	// the identifier. Returns ErrUserNotFound when no user matches.
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrUserNotFound when no user matches.
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}
