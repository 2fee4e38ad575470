package tag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/gatherbot/gatherbot/internal/common/uuid"
	"github.com/gatherbot/gatherbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	tagKeyPrefix      = "tag:"
	gameTagsKeyPrefix = "game_tags:"
)

// Config holds configuration for the Redis tag repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator creates identifiers for new tags
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	uuider uuid.UUID
}

// NewRedis creates a new Redis-backed tag repository
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

	uuider := cfg.UUIDGenerator
	if uuider == nil {
		uuider = uuid.New()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		uuider: uuider,
	}, nil
}

// EnsureTags returns a tag per name, creating any that do not exist
func (r *redisRepository) EnsureTags(ctx context.Context, input *EnsureTagsInput) (*EnsureTagsOutput, error) {
	if input == nil || len(input.Names) == 0 {
		return nil, errors.New("input and tag names cannot be empty")
	}

	tags := make([]*models.Tag, 0, len(input.Names))
	for _, name := range input.Names {
		tag, err := r.getTag(ctx, name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag = &models.Tag{
				ID:   r.uuider.NewUUID(),
				Name: name,
			}
			tagJSON, err := json.Marshal(tag)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal tag: %w", err)
			}
			// SetNX so a concurrent create of the same tag wins exactly once
			set, err := r.client.SetNX(ctx, tagKeyPrefix+name, tagJSON, 0).Result()
			if err != nil {
				return nil, fmt.Errorf("failed to save tag: %w", err)
			}
			if !set {
				tag, err = r.getTag(ctx, name)
				if err != nil {
					return nil, err
				}
			}
		}
		tags = append(tags, tag)
	}

	return &EnsureTagsOutput{Tags: tags}, nil
}

// TagGame associates the named tags with a game
func (r *redisRepository) TagGame(ctx context.Context, input *TagGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	if len(input.TagNames) == 0 {
		return nil
	}

	members := make([]interface{}, 0, len(input.TagNames))
	for _, name := range input.TagNames {
		members = append(members, name)
	}

	if err := r.client.SAdd(ctx, gameTagsKeyPrefix+input.GameID, members...).Err(); err != nil {
		return fmt.Errorf("failed to tag game: %w", err)
	}

	return nil
}

// GetGameTags returns the tags associated with a game
func (r *redisRepository) GetGameTags(ctx context.Context, input *GetGameTagsInput) (*GetGameTagsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	names, err := r.client.SMembers(ctx, gameTagsKeyPrefix+input.GameID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game tags: %w", err)
	}

	sort.Strings(names)

	tags := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := r.getTag(ctx, name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			// Tag record vanished; the association alone still names it
			tag = &models.Tag{Name: name}
		}
		tags = append(tags, tag)
	}

	return &GetGameTagsOutput{Tags: tags}, nil
}

// UntagGame removes every tag association for a game
func (r *redisRepository) UntagGame(ctx context.Context, input *UntagGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	if err := r.client.Del(ctx, gameTagsKeyPrefix+input.GameID).Err(); err != nil {
		return fmt.Errorf("failed to untag game: %w", err)
	}

	return nil
}

// getTag loads a tag by name, returning nil when it does not exist
func (r *redisRepository) getTag(ctx context.Context, name string) (*models.Tag, error) {
	tagJSON, err := r.client.Get(ctx, tagKeyPrefix+name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	var tag models.Tag
	if err := json.Unmarshal([]byte(tagJSON), &tag); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tag: %w", err)
	}

	return &tag, nil
}
