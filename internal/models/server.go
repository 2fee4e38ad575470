package models

const (
	// DefaultPrefix is the command prefix used until a server configures one
	DefaultPrefix = "!"

	// DefaultExpireMinutes is the pending game expiry window used until a
	// server configures one
	DefaultExpireMinutes = 30
)

// Server represents per-guild configuration
type Server struct {
	// GuildID is the platform identity of the guild
	GuildID string

	// Prefix is the command prefix for text channels
	Prefix string

	// ExpireMinutes is how long a pending game lives without activity
	ExpireMinutes int

	// ChannelNames is the channel allow-list; empty means all channels
	ChannelNames []string
}

// ChannelAllowed reports whether the bot may operate in the named channel
func (s *Server) ChannelAllowed(name string) bool {
	if len(s.ChannelNames) == 0 {
		return true
	}
	for _, n := range s.ChannelNames {
		if n == name {
			return true
		}
	}
	return false
}
