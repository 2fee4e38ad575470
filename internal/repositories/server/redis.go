package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gatherbot/gatherbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const serverKeyPrefix = "server:"

// ErrServerNotFound is returned when a server is not found
var ErrServerNotFound = errors.New("server not found")

// Config holds configuration for the Redis server repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed server repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetServer retrieves a server's configuration by guild ID
func (r *redisRepository) GetServer(ctx context.Context, input *GetServerInput) (*models.Server, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	serverJSON, err := r.client.Get(ctx, serverKeyPrefix+input.GuildID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	var server models.Server
	if err := json.Unmarshal([]byte(serverJSON), &server); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server: %w", err)
	}

	return &server, nil
}

// SaveServer persists a server's configuration
func (r *redisRepository) SaveServer(ctx context.Context, input *SaveServerInput) error {
	if input == nil || input.Server == nil {
		return errors.New("input and server cannot be nil")
	}

	serverJSON, err := json.Marshal(input.Server)
	if err != nil {
		return fmt.Errorf("failed to marshal server: %w", err)
	}

	if err := r.client.Set(ctx, serverKeyPrefix+input.Server.GuildID, serverJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save server: %w", err)
	}

	return nil
}

// EnsureServer returns the server's configuration, creating it with defaults
// when the guild has never been seen before
func (r *redisRepository) EnsureServer(ctx context.Context, input *EnsureServerInput) (*models.Server, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	server, err := r.GetServer(ctx, &GetServerInput{GuildID: input.GuildID})
	if err == nil {
		return server, nil
	}
	if !errors.Is(err, ErrServerNotFound) {
		return nil, err
	}

	server = &models.Server{
		GuildID:       input.GuildID,
		Prefix:        models.DefaultPrefix,
		ExpireMinutes: models.DefaultExpireMinutes,
	}

	if err := r.SaveServer(ctx, &SaveServerInput{Server: server}); err != nil {
		return nil, err
	}

	return server, nil
}
