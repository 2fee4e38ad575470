package guild

import (
	"github.com/gatherbot/gatherbot/internal/models"
	serverRepo "github.com/gatherbot/gatherbot/internal/repositories/server"
)

const (
	// maxPrefixLen truncates configured prefixes
	maxPrefixLen = 10

	// minExpireMinutes and maxExpireMinutes bound the expiry window
	minExpireMinutes = 1
	maxExpireMinutes = 60
)

// Config holds configuration for the guild service
type Config struct {
	// ServerRepo persists per-guild configuration
	ServerRepo serverRepo.Repository
}

// EnsureServerInput identifies the guild to fetch or create
type EnsureServerInput struct {
	GuildID string
}

// GetConfigInput identifies the guild to query
type GetConfigInput struct {
	GuildID string
}

// GetConfigOutput contains a guild's configuration
type GetConfigOutput struct {
	Server *models.Server
}

// SetPrefixInput contains the new command prefix for a guild
type SetPrefixInput struct {
	GuildID string
	Prefix  string
}

// SetPrefixOutput contains the applied prefix, after truncation
type SetPrefixOutput struct {
	Prefix string
}

// SetExpiryInput contains the new expiry window for a guild
type SetExpiryInput struct {
	GuildID string
	Minutes int
}

// SetChannelsInput replaces a guild's channel allow-list
type SetChannelsInput struct {
	GuildID      string
	ChannelNames []string
}
