package tag

import (
	"context"

	"github.com/gatherbot/gatherbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gatherbot/gatherbot/internal/repositories/tag Repository

// Repository defines the interface for tag persistence and the
// game-to-tag association
type Repository interface {
	// EnsureTags returns a tag per name, creating any that do not exist
	EnsureTags(ctx context.Context, input *EnsureTagsInput) (*EnsureTagsOutput, error)

	// TagGame associates the named tags with a game
	TagGame(ctx context.Context, input *TagGameInput) error

	// GetGameTags returns the tags associated with a game
	GetGameTags(ctx context.Context, input *GetGameTagsInput) (*GetGameTagsOutput, error)

	// UntagGame removes every tag association for a game
	UntagGame(ctx context.Context, input *UntagGameInput) error
}

// EnsureTagsInput names the tags to fetch or create
type EnsureTagsInput struct {
	Names []string
}

// EnsureTagsOutput contains the resolved tags
type EnsureTagsOutput struct {
	Tags []*models.Tag
}

// TagGameInput associates tags with a game
type TagGameInput struct {
	GameID   string
	TagNames []string
}

// GetGameTagsInput identifies the game to query
type GetGameTagsInput struct {
	GameID string
}

// GetGameTagsOutput contains the game's tags
type GetGameTagsOutput struct {
	Tags []*models.Tag
}

// UntagGameInput identifies the game to clear
type UntagGameInput struct {
	GameID string
}
