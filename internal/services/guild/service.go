package guild

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherbot/gatherbot/internal/models"
	serverRepo "github.com/gatherbot/gatherbot/internal/repositories/server"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gatherbot/gatherbot/internal/services/guild Service

// ErrInvalidExpiry is returned when the requested expiry window is out of
// bounds
var ErrInvalidExpiry = errors.New("expiry must be between 1 and 60 minutes")

// Service defines the interface for per-guild configuration operations
type Service interface {
	// EnsureServer returns a guild's configuration, creating defaults
	// when the guild is new
	EnsureServer(ctx context.Context, input *EnsureServerInput) (*models.Server, error)

	// GetConfig returns a guild's configuration
	GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error)

	// SetPrefix updates a guild's command prefix
	SetPrefix(ctx context.Context, input *SetPrefixInput) (*SetPrefixOutput, error)

	// SetExpiry updates a guild's pending game expiry window
	SetExpiry(ctx context.Context, input *SetExpiryInput) error

	// SetChannels replaces a guild's channel allow-list
	SetChannels(ctx context.Context, input *SetChannelsInput) error
}

// service implements the Service interface
type service struct {
	serverRepo serverRepo.Repository
}

// New creates a new guild service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ServerRepo == nil {
		return nil, errors.New("server repository cannot be nil")
	}

	return &service{
		serverRepo: cfg.ServerRepo,
	}, nil
}

// EnsureServer returns a guild's configuration, creating defaults when the
// guild is new
func (s *service) EnsureServer(ctx context.Context, input *EnsureServerInput) (*models.Server, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	return s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: input.GuildID,
	})
}

// GetConfig returns a guild's configuration
func (s *service) GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure server: %w", err)
	}

	return &GetConfigOutput{Server: server}, nil
}

// SetPrefix updates a guild's command prefix, truncating overlong values
func (s *service) SetPrefix(ctx context.Context, input *SetPrefixInput) (*SetPrefixOutput, error) {
	if input == nil || input.GuildID == "" || input.Prefix == "" {
		return nil, errors.New("input, guild ID, and prefix cannot be empty")
	}

	// Truncate by runes so a multibyte prefix is never cut mid-character
	prefix := input.Prefix
	if runes := []rune(prefix); len(runes) > maxPrefixLen {
		prefix = string(runes[:maxPrefixLen])
	}

	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure server: %w", err)
	}

	server.Prefix = prefix
	if err := s.serverRepo.SaveServer(ctx, &serverRepo.SaveServerInput{Server: server}); err != nil {
		return nil, fmt.Errorf("failed to save server: %w", err)
	}

	return &SetPrefixOutput{Prefix: prefix}, nil
}

// SetExpiry updates a guild's pending game expiry window
func (s *service) SetExpiry(ctx context.Context, input *SetExpiryInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	if input.Minutes < minExpireMinutes || input.Minutes > maxExpireMinutes {
		return ErrInvalidExpiry
	}

	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure server: %w", err)
	}

	server.ExpireMinutes = input.Minutes
	if err := s.serverRepo.SaveServer(ctx, &serverRepo.SaveServerInput{Server: server}); err != nil {
		return fmt.Errorf("failed to save server: %w", err)
	}

	return nil
}

// SetChannels replaces a guild's channel allow-list
func (s *service) SetChannels(ctx context.Context, input *SetChannelsInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure server: %w", err)
	}

	server.ChannelNames = input.ChannelNames
	if err := s.serverRepo.SaveServer(ctx, &serverRepo.SaveServerInput{Server: server}); err != nil {
		return fmt.Errorf("failed to save server: %w", err)
	}

	return nil
}
