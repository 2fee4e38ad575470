package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gatherbot/gatherbot/internal/common/clock"
	"github.com/gatherbot/gatherbot/internal/common/uuid"
	"github.com/gatherbot/gatherbot/internal/models"
	gameRepo "github.com/gatherbot/gatherbot/internal/repositories/game"
	serverRepo "github.com/gatherbot/gatherbot/internal/repositories/server"
	tagRepo "github.com/gatherbot/gatherbot/internal/repositories/tag"
	userRepo "github.com/gatherbot/gatherbot/internal/repositories/user"
	"github.com/gatherbot/gatherbot/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	gameRepo   gameRepo.Repository
	serverRepo serverRepo.Repository
	userRepo   userRepo.Repository
	tagRepo    tagRepo.Repository
	gateway    messaging.Gateway
	clock      clock.Clock
	uuider     uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.ServerRepo == nil {
		return nil, ErrNilServerRepo
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.TagRepo == nil {
		return nil, ErrNilTagRepo
	}
	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	uuider := cfg.UUIDGenerator
	if uuider == nil {
		uuider = uuid.New()
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		serverRepo: cfg.ServerRepo,
		userRepo:   cfg.UserRepo,
		tagRepo:    cfg.TagRepo,
		gateway:    cfg.Gateway,
		clock:      clk,
		uuider:     uuider,
	}, nil
}

// CreateGame creates a new pending game. Without invites the summary message
// is posted immediately; with invites the game stays unposted until every
// invited user has responded.
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.GuildID == "" || input.ChannelID == "" || input.CreatorID == "" {
		return nil, errors.New("guild ID, channel ID, and creator ID are required")
	}

	if input.Size < 2 {
		return nil, ErrInvalidSize
	}
	if len(input.Invites)+1 >= input.Size {
		return nil, ErrTooManyInvites
	}

	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure server: %w", err)
	}

	if err := s.checkNotWaiting(ctx, input.CreatorID, ErrAlreadyWaiting); err != nil {
		return nil, err
	}
	for _, invite := range input.Invites {
		if err := s.checkNotWaiting(ctx, invite.UserID, ErrInviteeAlreadyWaiting); err != nil {
			return nil, err
		}
	}

	tagNames := normalizeTags(input.TagNames)
	if _, err := s.tagRepo.EnsureTags(ctx, &tagRepo.EnsureTagsInput{Names: tagNames}); err != nil {
		return nil, fmt.Errorf("failed to ensure tags: %w", err)
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuider.NewUUID(),
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		Title:     input.Title,
		Size:      input.Size,
		Status:    models.GameStatusPending,
		TagNames:  tagNames,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(expireWindow(server)),
		Members: []*models.Member{
			{UserID: input.CreatorID, UserName: input.CreatorName},
		},
	}
	for _, invite := range input.Invites {
		game.Members = append(game.Members, &models.Member{
			UserID:   invite.UserID,
			UserName: invite.UserName,
			Invited:  true,
		})
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if err := s.tagRepo.TagGame(ctx, &tagRepo.TagGameInput{
		GameID:   game.ID,
		TagNames: tagNames,
	}); err != nil {
		// The game is already persisted and every member carries a
		// pending-game reference; tear it down so a failed create does not
		// leave anyone stuck waiting
		if derr := s.teardownGame(ctx, game); derr != nil {
			log.Printf("failed to clean up game %s after tagging failure: %v", game.ID, derr)
		}
		return nil, fmt.Errorf("failed to tag game: %w", err)
	}

	s.cacheUserName(ctx, input.CreatorID, input.CreatorName)
	for _, invite := range input.Invites {
		s.cacheUserName(ctx, invite.UserID, invite.UserName)
	}

	if len(input.Invites) == 0 {
		posted, err := s.postGame(ctx, game)
		if err != nil {
			return nil, err
		}
		return &CreateGameOutput{Game: game, Posted: posted}, nil
	}

	for _, invite := range input.Invites {
		_ = s.gateway.SendDirectMessage(ctx, &messaging.SendDirectMessageInput{
			UserID: invite.UserID,
			Content: fmt.Sprintf(
				"<@%s> invited you to join a game! Reply with `yes` to accept, or `no` to decline.",
				input.CreatorID,
			),
		})
	}

	return &CreateGameOutput{Game: game}, nil
}

// ConfirmInvite applies an invited user's yes/no response. A decline removes
// the user; when that leaves the game below a viable member count the game is
// torn down without ever being posted.
func (s *service) ConfirmInvite(ctx context.Context, input *ConfirmInviteInput) (*ConfirmInviteOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	game, err := s.gameRepo.GetGameByUser(ctx, &gameRepo.GetGameByUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrNotInvited
		}
		return nil, fmt.Errorf("failed to look up pending game: %w", err)
	}

	member := game.Member(input.UserID)
	if member == nil || !member.Invited {
		return nil, ErrNotInvited
	}
	if member.InviteConfirmed {
		return nil, ErrInviteResolved
	}

	if input.Accept {
		game, err = s.gameRepo.ConfirmMember(ctx, &gameRepo.ConfirmMemberInput{
			GameID: game.ID,
			UserID: input.UserID,
			Now:    s.clock.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to confirm invite: %w", err)
		}

		out := &ConfirmInviteOutput{Game: game}
		if game.AllConfirmed() && game.MessageID == "" {
			posted, err := s.postGame(ctx, game)
			if err != nil {
				return nil, err
			}
			out.Posted = posted
		}
		return out, nil
	}

	// Decline: remove the user and tell the initiator
	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: game.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure server: %w", err)
	}

	now := s.clock.Now()
	removed, err := s.gameRepo.RemoveMember(ctx, &gameRepo.RemoveMemberInput{
		GameID:    game.ID,
		UserID:    input.UserID,
		Now:       now,
		ExpiresAt: now.Add(expireWindow(server)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove declined invitee: %w", err)
	}
	game = removed.Game

	_ = s.gateway.SendDirectMessage(ctx, &messaging.SendDirectMessageInput{
		UserID:  game.CreatorID,
		Content: fmt.Sprintf("<@%s> declined the invitation to your game.", input.UserID),
	})

	if len(game.Members) < minViableMembers {
		if err := s.teardownGame(ctx, game); err != nil {
			return nil, err
		}
		return &ConfirmInviteOutput{Removed: true, Deleted: true}, nil
	}

	out := &ConfirmInviteOutput{Game: game, Removed: true}
	if game.AllConfirmed() && game.MessageID == "" {
		posted, err := s.postGame(ctx, game)
		if err != nil {
			return nil, err
		}
		out.Posted = posted
	}
	return out, nil
}

// ApplySignal reconciles a single join/leave signal. Signals for unknown
// messages and non-pending games are ignored rather than failed: a started
// game simply no longer listens.
func (s *service) ApplySignal(ctx context.Context, input *ApplySignalInput) (*ApplySignalOutput, error) {
	if input == nil || input.MessageID == "" || input.UserID == "" {
		return nil, errors.New("input, message ID, and user ID cannot be empty")
	}

	game, err := s.gameRepo.GetGameByMessage(ctx, &gameRepo.GetGameByMessageInput{
		MessageID: input.MessageID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return &ApplySignalOutput{}, nil
		}
		return nil, fmt.Errorf("failed to resolve game for message: %w", err)
	}

	if game.Status != models.GameStatusPending {
		return &ApplySignalOutput{Game: game}, nil
	}

	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: game.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure server: %w", err)
	}

	now := s.clock.Now()
	expiresAt := now.Add(expireWindow(server))

	switch input.Kind {
	case SignalJoin:
		added, err := s.gameRepo.AddMember(ctx, &gameRepo.AddMemberInput{
			GameID:    game.ID,
			UserID:    input.UserID,
			UserName:  input.UserName,
			Now:       now,
			ExpiresAt: expiresAt,
		})
		if err != nil {
			if errors.Is(err, gameRepo.ErrAlreadyInGame) {
				return nil, ErrAlreadyWaiting
			}
			if errors.Is(err, gameRepo.ErrGameFull) {
				return nil, ErrGameFull
			}
			return nil, fmt.Errorf("failed to add member: %w", err)
		}
		if !added.Added {
			// Re-join of an existing member, or the game started while
			// the signal was in flight
			return &ApplySignalOutput{Game: added.Game, Handled: true}, nil
		}

		s.cacheUserName(ctx, input.UserID, input.UserName)

		game, started, err := s.transitionOnMembershipChange(ctx, added.Game)
		if err != nil {
			return nil, err
		}
		return &ApplySignalOutput{Game: game, Handled: true, Joined: true, Started: started}, nil

	case SignalLeave:
		removed, err := s.gameRepo.RemoveMember(ctx, &gameRepo.RemoveMemberInput{
			GameID:    game.ID,
			UserID:    input.UserID,
			Now:       now,
			ExpiresAt: expiresAt,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to remove member: %w", err)
		}
		if !removed.Removed {
			return &ApplySignalOutput{Game: removed.Game, Handled: true}, nil
		}

		s.updatePost(ctx, removed.Game)
		return &ApplySignalOutput{Game: removed.Game, Handled: true, Left: true}, nil

	default:
		return nil, fmt.Errorf("unknown signal kind %q", input.Kind)
	}
}

// LeavePending removes the user from whatever pending game they are in
func (s *service) LeavePending(ctx context.Context, input *LeavePendingInput) (*LeavePendingOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	game, err := s.gameRepo.GetGameByUser(ctx, &gameRepo.GetGameByUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrNotWaiting
		}
		return nil, fmt.Errorf("failed to look up pending game: %w", err)
	}

	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
		GuildID: game.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure server: %w", err)
	}

	now := s.clock.Now()
	removed, err := s.gameRepo.RemoveMember(ctx, &gameRepo.RemoveMemberInput{
		GameID:    game.ID,
		UserID:    input.UserID,
		Now:       now,
		ExpiresAt: now.Add(expireWindow(server)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}
	if !removed.Removed {
		return nil, ErrNotWaiting
	}

	if game.MessageID != "" {
		_ = s.gateway.RemoveReaction(ctx, &messaging.RemoveReactionInput{
			ChannelID: game.ChannelID,
			MessageID: game.MessageID,
			Emoji:     EmojiJoin,
			UserID:    input.UserID,
		})
		s.updatePost(ctx, removed.Game)
	}

	return &LeavePendingOutput{Game: removed.Game}, nil
}

// transitionOnMembershipChange evaluates the fill state after a membership
// mutation. When the game is full and every invite is confirmed it verifies
// that each member is still reachable, then starts the game: final summaries
// go out by direct message, the post flips to the started presentation, and
// reactions are disabled. Members that can no longer be fetched are dropped
// and the game stays pending.
func (s *service) transitionOnMembershipChange(ctx context.Context, game *models.Game) (*models.Game, bool, error) {
	if !game.Full() || !game.AllConfirmed() {
		s.updatePost(ctx, game)
		return game, false, nil
	}

	var missing []string
	for _, m := range game.Members {
		fetched, err := s.gateway.FetchUser(ctx, &messaging.FetchUserInput{UserID: m.UserID})
		if err != nil {
			return nil, false, fmt.Errorf("failed to fetch user %s: %w", m.UserID, err)
		}
		if fetched.User == nil {
			missing = append(missing, m.UserID)
		}
	}

	if len(missing) > 0 {
		// Someone signed up and then left the platform; drop them and
		// keep gathering
		server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{
			GuildID: game.GuildID,
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to ensure server: %w", err)
		}
		now := s.clock.Now()
		for _, userID := range missing {
			removed, err := s.gameRepo.RemoveMember(ctx, &gameRepo.RemoveMemberInput{
				GameID:    game.ID,
				UserID:    userID,
				Now:       now,
				ExpiresAt: now.Add(expireWindow(server)),
			})
			if err != nil {
				return nil, false, fmt.Errorf("failed to drop unreachable member %s: %w", userID, err)
			}
			game = removed.Game
		}
		s.updatePost(ctx, game)
		return game, false, nil
	}

	game, err := s.gameRepo.MarkStarted(ctx, &gameRepo.MarkStartedInput{
		GameID: game.ID,
		Now:    s.clock.Now(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to mark game started: %w", err)
	}

	post := gamePost(game)
	for _, m := range game.Members {
		_ = s.gateway.SendDirectPost(ctx, &messaging.SendDirectPostInput{
			UserID: m.UserID,
			Post:   post,
		})
	}

	if game.MessageID != "" {
		_ = s.gateway.EditPost(ctx, &messaging.EditPostInput{
			ChannelID: game.ChannelID,
			MessageID: game.MessageID,
			Post:      post,
		})
		_ = s.gateway.ClearReactions(ctx, &messaging.ClearReactionsInput{
			ChannelID: game.ChannelID,
			MessageID: game.MessageID,
		})
	}

	return game, true, nil
}

// postGame publishes the summary message for a game and enables the
// join/leave reactions. A delivery failure leaves the game unposted; the
// expiration sweep will reclaim it if nobody retries.
func (s *service) postGame(ctx context.Context, game *models.Game) (bool, error) {
	sent, err := s.gateway.SendPost(ctx, &messaging.SendPostInput{
		ChannelID: game.ChannelID,
		Post:      gamePost(game),
	})
	if err != nil {
		return false, fmt.Errorf("failed to send game post: %w", err)
	}
	if sent.MessageID == "" {
		log.Printf("game %s not posted: message delivery failed", game.ID)
		return false, nil
	}

	if err := s.gameRepo.SetGameMessage(ctx, &gameRepo.SetGameMessageInput{
		GameID:    game.ID,
		MessageID: sent.MessageID,
	}); err != nil {
		return false, fmt.Errorf("failed to record game message: %w", err)
	}
	game.MessageID = sent.MessageID

	_ = s.gateway.AddReaction(ctx, &messaging.AddReactionInput{
		ChannelID: game.ChannelID,
		MessageID: sent.MessageID,
		Emoji:     EmojiJoin,
	})
	_ = s.gateway.AddReaction(ctx, &messaging.AddReactionInput{
		ChannelID: game.ChannelID,
		MessageID: sent.MessageID,
		Emoji:     EmojiLeave,
	})

	return true, nil
}

// updatePost refreshes the posted summary message, if there is one
func (s *service) updatePost(ctx context.Context, game *models.Game) {
	if game.MessageID == "" {
		return
	}
	_ = s.gateway.EditPost(ctx, &messaging.EditPostInput{
		ChannelID: game.ChannelID,
		MessageID: game.MessageID,
		Post:      gamePost(game),
	})
}

// teardownGame deletes a game and its tag associations
func (s *service) teardownGame(ctx context.Context, game *models.Game) error {
	if err := s.tagRepo.UntagGame(ctx, &tagRepo.UntagGameInput{GameID: game.ID}); err != nil {
		log.Printf("failed to untag game %s: %v", game.ID, err)
	}
	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// checkNotWaiting fails with the given error when the user is already
// referenced by a pending game
func (s *service) checkNotWaiting(ctx context.Context, userID string, conflict error) error {
	_, err := s.gameRepo.GetGameByUser(ctx, &gameRepo.GetGameByUserInput{UserID: userID})
	if err == nil {
		return conflict
	}
	if !errors.Is(err, gameRepo.ErrGameNotFound) {
		return fmt.Errorf("failed to look up pending game: %w", err)
	}
	return nil
}

// cacheUserName records the user's display name, best-effort
func (s *service) cacheUserName(ctx context.Context, userID, name string) {
	if name == "" {
		return
	}

	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err == nil && existing.CachedName == name {
		return
	}
	if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		log.Printf("failed to get user %s: %v", userID, err)
		return
	}

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
		User: &models.User{ID: userID, CachedName: name},
	}); err != nil {
		log.Printf("failed to cache name for user %s: %v", userID, err)
	}
}

// expireWindow converts a server's expiry setting to a duration
func expireWindow(server *models.Server) time.Duration {
	minutes := server.ExpireMinutes
	if minutes <= 0 {
		minutes = models.DefaultExpireMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// normalizeTags lowercases tag names, drops overlong ones, caps the count,
// and falls back to the default tag when nothing usable remains
func normalizeTags(names []string) []string {
	tags := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || len(name) >= maxTagLen || seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, name)
		if len(tags) == maxTags {
			break
		}
	}
	if len(tags) == 0 {
		tags = []string{defaultTagName}
	}
	return tags
}
