package user

import (
	"context"

	"github.com/gatherbot/gatherbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gatherbot/gatherbot/internal/repositories/user Repository

// Repository defines the interface for user profile persistence
type Repository interface {
	// GetUser retrieves a user profile by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// SaveUser persists a user profile
	SaveUser(ctx context.Context, input *SaveUserInput) error
}

// GetUserInput identifies a user by ID
type GetUserInput struct {
	UserID string
}

// SaveUserInput contains the user to persist
type SaveUserInput struct {
	User *models.User
}
