package game

import (
	"context"

	"github.com/gatherbot/gatherbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gatherbot/gatherbot/internal/repositories/game Repository

// Repository defines the interface for game persistence. The repository owns
// every key that has to change together with a game's member set: the game
// record itself, the message index used to resolve reaction signals, the
// per-user game reference, and the pending-expiry index.
type Repository interface {
	// SaveGame persists a new or updated game along with its indexes
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByMessage resolves a game from its posted message ID
	GetGameByMessage(ctx context.Context, input *GetGameByMessageInput) (*models.Game, error)

	// GetGameByUser returns the pending game the user is referenced by
	GetGameByUser(ctx context.Context, input *GetGameByUserInput) (*models.Game, error)

	// AddMember atomically adds a user to a game, enforcing the capacity
	// limit and the one-pending-game-per-user rule in the same transaction
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember atomically removes a user from a game
	RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error)

	// ConfirmMember marks an invited member's invite as accepted
	ConfirmMember(ctx context.Context, input *ConfirmMemberInput) (*models.Game, error)

	// SetGameMessage records the posted summary message for a game
	SetGameMessage(ctx context.Context, input *SetGameMessageInput) error

	// MarkStarted moves a game to the started state and releases its
	// members' pending-game references
	MarkStarted(ctx context.Context, input *MarkStartedInput) (*models.Game, error)

	// DeleteGame removes a game and clears every member's game reference
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetExpiredGames returns pending games whose deadline has passed
	GetExpiredGames(ctx context.Context, input *GetExpiredGamesInput) (*GetExpiredGamesOutput, error)
}
