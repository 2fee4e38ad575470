package game

import (
	"github.com/gatherbot/gatherbot/internal/common/clock"
	"github.com/gatherbot/gatherbot/internal/common/uuid"
	"github.com/gatherbot/gatherbot/internal/models"
	gameRepo "github.com/gatherbot/gatherbot/internal/repositories/game"
	serverRepo "github.com/gatherbot/gatherbot/internal/repositories/server"
	tagRepo "github.com/gatherbot/gatherbot/internal/repositories/tag"
	userRepo "github.com/gatherbot/gatherbot/internal/repositories/user"
	"github.com/gatherbot/gatherbot/internal/services/messaging"
)

const (
	// EmojiJoin is the reaction that signals joining a game
	EmojiJoin = "➕"

	// EmojiLeave is the reaction that signals leaving a game
	EmojiLeave = "➖"

	// DefaultGameSize is used when a session request names no size
	DefaultGameSize = 4

	// minViableMembers is the smallest member set a game may shrink to
	// before it is torn down instead of posted
	minViableMembers = 2

	// maxTags caps how many tags a game may carry
	maxTags = 5

	// maxTagLen drops overlong tag names
	maxTagLen = 50

	// defaultTagName is assigned when a game names no tags
	defaultTagName = "default"
)

// Config holds configuration for the game service
type Config struct {
	// GameRepo persists games and memberships
	GameRepo gameRepo.Repository

	// ServerRepo persists per-guild configuration
	ServerRepo serverRepo.Repository

	// UserRepo persists user profiles
	UserRepo userRepo.Repository

	// TagRepo persists tags and game associations
	TagRepo tagRepo.Repository

	// Gateway delivers outbound notifications
	Gateway messaging.Gateway

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator creates game identifiers
	UUIDGenerator uuid.UUID
}

// Invite names a user to pre-add to a new game
type Invite struct {
	// UserID is the invited user
	UserID string

	// UserName is the invited user's display name
	UserName string
}

// CreateGameInput contains the parameters for a new game
type CreateGameInput struct {
	// GuildID is the server the game belongs to
	GuildID string

	// ChannelID is the channel the game was requested in
	ChannelID string

	// CreatorID is the requesting user
	CreatorID string

	// CreatorName is the requesting user's display name
	CreatorName string

	// Size is the target player count
	Size int

	// Title is an optional game description
	Title string

	// TagNames are optional descriptive tags
	TagNames []string

	// Invites are users to pre-add; they must confirm before the game
	// is posted
	Invites []*Invite
}

// CreateGameOutput contains the result of creating a game
type CreateGameOutput struct {
	// Game is the created game
	Game *models.Game

	// Posted indicates the summary message was published immediately
	Posted bool
}

// ConfirmInviteInput contains an invited user's response
type ConfirmInviteInput struct {
	// UserID is the responding user
	UserID string

	// Accept is true for yes, false for no
	Accept bool
}

// ConfirmInviteOutput contains the result of an invite response
type ConfirmInviteOutput struct {
	// Game is the game after the response, nil when Deleted
	Game *models.Game

	// Removed indicates the user declined and was removed
	Removed bool

	// Deleted indicates the decline left the game unviable and it was
	// torn down
	Deleted bool

	// Posted indicates the response completed the invite round and the
	// summary message was published
	Posted bool
}

// SignalKind distinguishes membership signals
type SignalKind string

const (
	// SignalJoin is a request to join a game
	SignalJoin SignalKind = "join"

	// SignalLeave is a request to leave a game
	SignalLeave SignalKind = "leave"
)

// ApplySignalInput contains a raw membership signal resolved from a
// posted message
type ApplySignalInput struct {
	// MessageID is the posted summary message the signal targets
	MessageID string

	// UserID is the acting user
	UserID string

	// UserName is the acting user's display name
	UserName string

	// Kind is join or leave
	Kind SignalKind
}

// ApplySignalOutput contains the result of a membership signal
type ApplySignalOutput struct {
	// Game is the game after the signal, nil when not Handled
	Game *models.Game

	// Handled indicates the message resolved to a pending game
	Handled bool

	// Joined indicates a join mutation was committed
	Joined bool

	// Left indicates a leave mutation was committed
	Left bool

	// Started indicates the signal filled the game and it started
	Started bool
}

// LeavePendingInput identifies the user leaving their pending game
type LeavePendingInput struct {
	UserID string
}

// LeavePendingOutput contains the result of a command-driven leave
type LeavePendingOutput struct {
	Game *models.Game
}

// SweepExpiredInput triggers one expiration sweep
type SweepExpiredInput struct{}

// SweepExpiredOutput contains the result of one sweep cycle
type SweepExpiredOutput struct {
	// Swept is the number of games removed
	Swept int
}
