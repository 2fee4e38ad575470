package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusPending indicates a game is still gathering players
	GameStatusPending GameStatus = "pending"

	// GameStatusStarted indicates a game has filled and begun
	GameStatusStarted GameStatus = "started"
)

// Member represents a single player's membership in a game
type Member struct {
	// UserID is the platform identity of the player
	UserID string

	// UserName is the player's display name at the time they were added
	UserName string

	// Invited indicates the player was pre-invited rather than self-joined
	Invited bool

	// InviteConfirmed indicates an invited player has accepted their invite
	InviteConfirmed bool
}

// Confirmed reports whether this member counts toward a postable game.
// Self-joined members always count; invited members count once they accept.
func (m *Member) Confirmed() bool {
	return !m.Invited || m.InviteConfirmed
}

// Game represents an ad-hoc matchmaking session
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// GuildID is the server the game belongs to
	GuildID string

	// ChannelID is the channel where the game was requested
	ChannelID string

	// CreatorID is the player who requested the game
	CreatorID string

	// Title is an optional description for the game
	Title string

	// Size is the target number of players
	Size int

	// Status is the current state of the game
	Status GameStatus

	// MessageID is the posted summary message, empty until posted
	MessageID string

	// Members contains the players currently in the game
	Members []*Member

	// TagNames contains the descriptive tags assigned to the game
	TagNames []string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time

	// ExpiresAt is the deadline after which a pending game is reclaimed
	ExpiresAt time.Time
}

// Member returns the membership entry for the given user, or nil
func (g *Game) Member(userID string) *Member {
	for _, m := range g.Members {
		if m.UserID == userID {
			return m
		}
	}
	return nil
}

// AllConfirmed reports whether every member is either self-joined or has
// accepted their invite. A game is only posted once this holds.
func (g *Game) AllConfirmed() bool {
	for _, m := range g.Members {
		if !m.Confirmed() {
			return false
		}
	}
	return true
}

// Remaining returns how many open slots the game has
func (g *Game) Remaining() int {
	return g.Size - len(g.Members)
}

// Full reports whether the game has reached its target size
func (g *Game) Full() bool {
	return len(g.Members) >= g.Size
}
