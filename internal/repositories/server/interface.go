package server

import (
	"context"

	"github.com/gatherbot/gatherbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gatherbot/gatherbot/internal/repositories/server Repository

// Repository defines the interface for server configuration persistence
type Repository interface {
	// GetServer retrieves a server's configuration by guild ID
	GetServer(ctx context.Context, input *GetServerInput) (*models.Server, error)

	// SaveServer persists a server's configuration
	SaveServer(ctx context.Context, input *SaveServerInput) error

	// EnsureServer returns the server's configuration, creating it with
	// defaults when the guild has never been seen before
	EnsureServer(ctx context.Context, input *EnsureServerInput) (*models.Server, error)
}

// GetServerInput identifies a server by guild ID
type GetServerInput struct {
	GuildID string
}

// SaveServerInput contains the server to persist
type SaveServerInput struct {
	Server *models.Server
}

// EnsureServerInput identifies the server to fetch or create
type EnsureServerInput struct {
	GuildID string
}
