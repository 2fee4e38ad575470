package game

import (
	"time"

	"github.com/gatherbot/gatherbot/internal/models"
)

// SaveGameInput contains the game to persist
type SaveGameInput struct {
	Game *models.Game
}

// GetGameInput identifies a game by ID
type GetGameInput struct {
	GameID string
}

// GetGameByMessageInput identifies a game by its posted message
type GetGameByMessageInput struct {
	MessageID string
}

// GetGameByUserInput identifies a game by a referencing user
type GetGameByUserInput struct {
	UserID string
}

// AddMemberInput contains the parameters for an atomic join
type AddMemberInput struct {
	// GameID is the game being joined
	GameID string

	// UserID is the joining user
	UserID string

	// UserName is the joining user's display name
	UserName string

	// Now is the mutation timestamp
	Now time.Time

	// ExpiresAt is the refreshed expiry deadline for the game
	ExpiresAt time.Time
}

// AddMemberOutput contains the result of an atomic join
type AddMemberOutput struct {
	// Game is the game after the mutation
	Game *models.Game

	// Added indicates whether a mutation was committed; false means the
	// user was already a member or the game was no longer pending
	Added bool
}

// RemoveMemberInput contains the parameters for an atomic leave
type RemoveMemberInput struct {
	// GameID is the game being left
	GameID string

	// UserID is the leaving user
	UserID string

	// Now is the mutation timestamp
	Now time.Time

	// ExpiresAt is the refreshed expiry deadline for the game
	ExpiresAt time.Time
}

// RemoveMemberOutput contains the result of an atomic leave
type RemoveMemberOutput struct {
	// Game is the game after the mutation
	Game *models.Game

	// Removed indicates whether the user was a member and got removed
	Removed bool
}

// ConfirmMemberInput identifies the invited member to confirm
type ConfirmMemberInput struct {
	GameID string
	UserID string
	Now    time.Time
}

// SetGameMessageInput records a posted message for a game
type SetGameMessageInput struct {
	GameID    string
	MessageID string
}

// MarkStartedInput identifies the game to start
type MarkStartedInput struct {
	GameID string
	Now    time.Time
}

// DeleteGameInput identifies the game to delete
type DeleteGameInput struct {
	GameID string
}

// GetExpiredGamesInput bounds the expiry query
type GetExpiredGamesInput struct {
	// Now is the cutoff; pending games with ExpiresAt <= Now are returned
	Now time.Time
}

// GetExpiredGamesOutput contains the expired games
type GetExpiredGamesOutput struct {
	Games []*models.Game
}
