package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gatherbot/gatherbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix     = "game:"
	messageKeyPrefix  = "game_message:"
	userGameKeyPrefix = "user_game:"
	pendingGamesKey   = "pending_games"

	// maxTxRetries bounds optimistic transaction retries under contention
	maxTxRetries = 5
)

// Define errors
var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrGameFull is returned when a join would exceed the game's size
	ErrGameFull = errors.New("game is at capacity")

	// ErrAlreadyInGame is returned when the user is referenced by a
	// different pending game
	ErrAlreadyInGame = errors.New("user is already in another pending game")

	// ErrMemberNotFound is returned when the user is not a member of the game
	ErrMemberNotFound = errors.New("user is not a member of the game")
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// getGame loads and unmarshals a game using the given command runner, which
// lets the same lookup run inside and outside of a transaction.
func getGame(ctx context.Context, c redis.Cmdable, gameID string) (*models.Game, error) {
	gameJSON, err := c.Get(ctx, gameKeyPrefix+gameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// SaveGame persists a game and its indexes to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()

	gameKey := gameKeyPrefix + input.Game.ID
	pipe.Set(ctx, gameKey, gameJSON, 0)

	if input.Game.MessageID != "" {
		pipe.Set(ctx, messageKeyPrefix+input.Game.MessageID, input.Game.ID, 0)
	}

	if input.Game.Status == models.GameStatusPending {
		pipe.ZAdd(ctx, pendingGamesKey, redis.Z{
			Score:  float64(input.Game.ExpiresAt.Unix()),
			Member: input.Game.ID,
		})
		// Every member of a pending game is referenced back to it
		for _, m := range input.Game.Members {
			pipe.Set(ctx, userGameKeyPrefix+m.UserID, input.Game.ID, 0)
		}
	} else {
		pipe.ZRem(ctx, pendingGamesKey, input.Game.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return getGame(ctx, r.client, input.GameID)
}

// GetGameByMessage retrieves a game by its posted message ID
func (r *redisRepository) GetGameByMessage(ctx context.Context, input *GetGameByMessageInput) (*models.Game, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, messageKeyPrefix+input.MessageID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for message: %w", err)
	}

	return getGame(ctx, r.client, gameID)
}

// GetGameByUser retrieves the pending game the user is referenced by
func (r *redisRepository) GetGameByUser(ctx context.Context, input *GetGameByUserInput) (*models.Game, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, userGameKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for user: %w", err)
	}

	return getGame(ctx, r.client, gameID)
}

// AddMember atomically adds a user to a pending game. The capacity check,
// the cross-game membership check, and the insertion run inside a single
// WATCH transaction over the game record and the user's game reference, so
// two concurrent joins can never both claim the last open slot.
func (r *redisRepository) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID, and user ID cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID
	claimKey := userGameKeyPrefix + input.UserID

	var out *AddMemberOutput
	txn := func(tx *redis.Tx) error {
		game, err := getGame(ctx, tx, input.GameID)
		if err != nil {
			return err
		}

		// Started games admit no further membership changes
		if game.Status != models.GameStatusPending {
			out = &AddMemberOutput{Game: game}
			return nil
		}

		// Re-joining is a no-op, not a mutation
		if game.Member(input.UserID) != nil {
			out = &AddMemberOutput{Game: game}
			return nil
		}

		claimed, err := tx.Get(ctx, claimKey).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get user game reference: %w", err)
		}
		if err == nil && claimed != input.GameID {
			return ErrAlreadyInGame
		}

		if game.Full() {
			return ErrGameFull
		}

		game.Members = append(game.Members, &models.Member{
			UserID:   input.UserID,
			UserName: input.UserName,
		})
		game.UpdatedAt = input.Now
		game.ExpiresAt = input.ExpiresAt

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0)
			pipe.Set(ctx, claimKey, game.ID, 0)
			pipe.ZAdd(ctx, pendingGamesKey, redis.Z{
				Score:  float64(game.ExpiresAt.Unix()),
				Member: game.ID,
			})
			return nil
		})
		if err != nil {
			return err
		}

		out = &AddMemberOutput{Game: game, Added: true}
		return nil
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txn, gameKey, claimKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	return nil, fmt.Errorf("join transaction for game %s did not commit after %d attempts", input.GameID, maxTxRetries)
}

// RemoveMember atomically removes a user from a pending game and clears the
// user's game reference.
func (r *redisRepository) RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID, and user ID cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID
	claimKey := userGameKeyPrefix + input.UserID

	var out *RemoveMemberOutput
	txn := func(tx *redis.Tx) error {
		game, err := getGame(ctx, tx, input.GameID)
		if err != nil {
			return err
		}

		if game.Status != models.GameStatusPending || game.Member(input.UserID) == nil {
			out = &RemoveMemberOutput{Game: game}
			return nil
		}

		members := make([]*models.Member, 0, len(game.Members))
		for _, m := range game.Members {
			if m.UserID != input.UserID {
				members = append(members, m)
			}
		}
		game.Members = members
		game.UpdatedAt = input.Now
		game.ExpiresAt = input.ExpiresAt

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0)
			pipe.Del(ctx, claimKey)
			pipe.ZAdd(ctx, pendingGamesKey, redis.Z{
				Score:  float64(game.ExpiresAt.Unix()),
				Member: game.ID,
			})
			return nil
		})
		if err != nil {
			return err
		}

		out = &RemoveMemberOutput{Game: game, Removed: true}
		return nil
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txn, gameKey, claimKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	return nil, fmt.Errorf("leave transaction for game %s did not commit after %d attempts", input.GameID, maxTxRetries)
}

// ConfirmMember marks an invited member's invite as accepted
func (r *redisRepository) ConfirmMember(ctx context.Context, input *ConfirmMemberInput) (*models.Game, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID, and user ID cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID

	var updated *models.Game
	txn := func(tx *redis.Tx) error {
		game, err := getGame(ctx, tx, input.GameID)
		if err != nil {
			return err
		}

		member := game.Member(input.UserID)
		if member == nil {
			return ErrMemberNotFound
		}

		member.InviteConfirmed = true
		game.UpdatedAt = input.Now

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = game
		return nil
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txn, gameKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, fmt.Errorf("confirm transaction for game %s did not commit after %d attempts", input.GameID, maxTxRetries)
}

// SetGameMessage records the posted summary message for a game. The record
// is re-read and written under WATCH so a concurrent membership mutation is
// never overwritten by the message assignment.
func (r *redisRepository) SetGameMessage(ctx context.Context, input *SetGameMessageInput) error {
	if input == nil || input.GameID == "" || input.MessageID == "" {
		return errors.New("input, game ID, and message ID cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID

	txn := func(tx *redis.Tx) error {
		game, err := getGame(ctx, tx, input.GameID)
		if err != nil {
			return err
		}

		game.MessageID = input.MessageID

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0)
			pipe.Set(ctx, messageKeyPrefix+input.MessageID, game.ID, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txn, gameKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return err
		}
		return nil
	}

	return fmt.Errorf("message transaction for game %s did not commit after %d attempts", input.GameID, maxTxRetries)
}

// MarkStarted moves a game to the started state, drops it from the pending
// index, and releases each member's pending-game reference.
func (r *redisRepository) MarkStarted(ctx context.Context, input *MarkStartedInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID

	var updated *models.Game
	txn := func(tx *redis.Tx) error {
		game, err := getGame(ctx, tx, input.GameID)
		if err != nil {
			return err
		}

		game.Status = models.GameStatusStarted
		game.UpdatedAt = input.Now

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0)
			pipe.ZRem(ctx, pendingGamesKey, game.ID)
			for _, m := range game.Members {
				pipe.Del(ctx, userGameKeyPrefix+m.UserID)
			}
			return nil
		})
		if err != nil {
			return err
		}

		updated = game
		return nil
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txn, gameKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, fmt.Errorf("start transaction for game %s did not commit after %d attempts", input.GameID, maxTxRetries)
}

// DeleteGame removes a game and all of its indexes. Clearing each member's
// game reference here is the referential action that keeps users from
// pointing at a game that no longer exists.
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	game, err := getGame(ctx, r.client, input.GameID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, gameKeyPrefix+game.ID)
	if game.MessageID != "" {
		pipe.Del(ctx, messageKeyPrefix+game.MessageID)
	}
	pipe.ZRem(ctx, pendingGamesKey, game.ID)
	for _, m := range game.Members {
		pipe.Del(ctx, userGameKeyPrefix+m.UserID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetExpiredGames returns pending games whose deadline has passed
func (r *redisRepository) GetExpiredGames(ctx context.Context, input *GetExpiredGamesInput) (*GetExpiredGamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	gameIDs, err := r.client.ZRangeByScore(ctx, pendingGamesKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(input.Now.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query expired games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		game, err := getGame(ctx, r.client, gameID)
		if err != nil {
			// Deleted between the index read and the fetch
			if errors.Is(err, ErrGameNotFound) {
				continue
			}
			return nil, err
		}
		games = append(games, game)
	}

	return &GetExpiredGamesOutput{Games: games}, nil
}
