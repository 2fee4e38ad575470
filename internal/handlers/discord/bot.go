package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/gatherbot/gatherbot/internal/models"
	"github.com/gatherbot/gatherbot/internal/services/game"
	"github.com/gatherbot/gatherbot/internal/services/guild"
)

// DefaultAdminRole is the role required for configuration commands
const DefaultAdminRole = "GatherBot Admin"

// Config holds the configuration for the bot
type Config struct {
	// Session is a discordgo session; the bot registers its handlers on
	// it and opens it on Start
	Session *discordgo.Session

	// GameService drives game lifecycle and membership
	GameService game.Service

	// GuildService drives per-server configuration
	GuildService guild.Service

	// AdminRole overrides the role required for configuration commands
	AdminRole string
}

// Bot wires Discord events to the game and guild services
type Bot struct {
	session      *discordgo.Session
	registry     *Registry
	gameService  game.Service
	guildService guild.Service
	adminRole    string

	removeHandlers []func()

	// stripped tracks ➕ reactions the bot removed itself. Discord
	// dispatches the resulting reaction-remove event attributed to the
	// user, and without this record it would read as that user leaving
	// the game they just joined.
	stripMu  sync.Mutex
	stripped map[string]struct{}
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.GuildService == nil {
		return nil, errors.New("guild service cannot be nil")
	}

	adminRole := cfg.AdminRole
	if adminRole == "" {
		adminRole = DefaultAdminRole
	}

	bot := &Bot{
		session:      cfg.Session,
		gameService:  cfg.GameService,
		guildService: cfg.GuildService,
		adminRole:    adminRole,
		stripped:     make(map[string]struct{}),
	}
	bot.registry = bot.buildRegistry()

	bot.removeHandlers = append(bot.removeHandlers,
		cfg.Session.AddHandler(bot.handleMessageCreate),
		cfg.Session.AddHandler(bot.handleReactionAdd),
		cfg.Session.AddHandler(bot.handleReactionRemove),
	)

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop detaches the event handlers and closes the Discord connection
func (b *Bot) Stop() error {
	for _, remove := range b.removeHandlers {
		remove()
	}
	return b.session.Close()
}

// handleMessageCreate processes prefix commands and DM invite responses
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx := context.Background()
	isDM := m.GuildID == ""
	prefix := models.DefaultPrefix

	if isDM {
		// yes/no over DM answers a pending invite
		choice := strings.ToLower(strings.TrimSpace(m.Content))
		if choice == "yes" || choice == "no" {
			b.handleInviteResponse(ctx, s, m, choice == "yes")
			return
		}
	} else {
		server, err := b.guildService.EnsureServer(ctx, &guild.EnsureServerInput{
			GuildID: m.GuildID,
		})
		if err != nil {
			log.Printf("failed to ensure server %s: %v", m.GuildID, err)
			return
		}
		if !b.channelAllowed(s, server, m.ChannelID) {
			return
		}
		prefix = server.Prefix
	}

	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	tokens := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(tokens) == 0 {
		return
	}
	request := strings.ToLower(tokens[0])
	params := tokens[1:]

	cmd, matches := b.registry.Resolve(request)
	if cmd == nil {
		if len(matches) == 0 {
			b.reply(s, m.ChannelID, fmt.Sprintf("Sorry, there is no %q command.", request))
		} else {
			possible := make([]string, 0, len(matches))
			for _, name := range matches {
				possible = append(possible, prefix+name)
			}
			b.reply(s, m.ChannelID, fmt.Sprintf("Did you mean: %s?", strings.Join(possible, ", ")))
		}
		return
	}

	if isDM && !cmd.AllowDM {
		b.reply(s, m.ChannelID, "That command can not be used in a direct message.")
		return
	}

	cc := &CommandContext{
		Session: s,
		Message: m,
		Prefix:  prefix,
		Params:  params,
		IsDM:    isDM,
	}
	if err := cmd.Run(ctx, cc); err != nil {
		log.Printf("error handling command %s: %v", cmd.Name, err)
	}
}

// handleInviteResponse forwards a DM yes/no to the game service
func (b *Bot) handleInviteResponse(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, accept bool) {
	out, err := b.gameService.ConfirmInvite(ctx, &game.ConfirmInviteInput{
		UserID: m.Author.ID,
		Accept: accept,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrNotInvited):
			b.reply(s, m.ChannelID, "You do not have a pending game invitation.")
		case errors.Is(err, game.ErrInviteResolved):
			b.reply(s, m.ChannelID, "You have already responded to that invitation.")
		default:
			log.Printf("error confirming invite for %s: %v", m.Author.ID, err)
			b.reply(s, m.ChannelID, "Something went wrong, please try again.")
		}
		return
	}

	if accept {
		msg := "Invitation accepted!"
		if out.Posted {
			msg += " Everyone has responded and the game has been posted."
		} else {
			msg += " You will be notified once everyone has responded."
		}
		b.reply(s, m.ChannelID, msg)
		return
	}

	b.reply(s, m.ChannelID, "Invitation declined.")
}

// handleReactionAdd treats ➕/➖ reactions on game posts as join/leave
// signals. The user's reaction is removed afterwards so the post behaves
// like a pair of buttons.
func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	emoji := r.Emoji.Name
	if emoji != game.EmojiJoin && emoji != game.EmojiLeave {
		return
	}
	if r.GuildID == "" {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	ctx := context.Background()

	server, err := b.guildService.EnsureServer(ctx, &guild.EnsureServerInput{
		GuildID: r.GuildID,
	})
	if err != nil {
		log.Printf("failed to ensure server %s: %v", r.GuildID, err)
		return
	}
	if !b.channelAllowed(s, server, r.ChannelID) {
		return
	}

	// Record the strip before issuing it so the echoed remove event is
	// suppressed even when it arrives before the REST call returns
	if emoji == game.EmojiJoin {
		b.markStripped(r.MessageID, r.UserID)
	}
	if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, emoji, r.UserID); err != nil {
		log.Printf("warning: could not remove reaction on message %s: %v", r.MessageID, err)
		if emoji == game.EmojiJoin {
			b.consumeStripped(r.MessageID, r.UserID)
		}
	}

	kind := game.SignalJoin
	if emoji == game.EmojiLeave {
		kind = game.SignalLeave
	}

	b.applySignal(ctx, s, server, r.MessageID, r.UserID, memberName(r.Member), kind)
}

// handleReactionRemove treats withdrawing a ➕ as a leave signal, which
// covers servers where the bot lacks permission to strip reactions. Removes
// the bot performed itself are echoes of a join and are ignored.
func (b *Bot) handleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.Emoji.Name != game.EmojiJoin {
		return
	}
	if r.GuildID == "" {
		return
	}
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}
	if b.consumeStripped(r.MessageID, r.UserID) {
		return
	}

	ctx := context.Background()

	server, err := b.guildService.EnsureServer(ctx, &guild.EnsureServerInput{
		GuildID: r.GuildID,
	})
	if err != nil {
		log.Printf("failed to ensure server %s: %v", r.GuildID, err)
		return
	}
	if !b.channelAllowed(s, server, r.ChannelID) {
		return
	}

	b.applySignal(ctx, s, server, r.MessageID, r.UserID, "", game.SignalLeave)
}

// applySignal runs the membership reconciler and relays rejections to the
// acting user over DM
func (b *Bot) applySignal(ctx context.Context, s *discordgo.Session, server *models.Server, messageID, userID, userName string, kind game.SignalKind) {
	_, err := b.gameService.ApplySignal(ctx, &game.ApplySignalInput{
		MessageID: messageID,
		UserID:    userID,
		UserName:  userName,
		Kind:      kind,
	})
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, game.ErrAlreadyWaiting):
		b.directMessage(s, userID, fmt.Sprintf(
			"You are already waiting in another game. Use `%sleave` first if you want to switch.",
			server.Prefix,
		))
	case errors.Is(err, game.ErrGameFull):
		// Lost the race for the last slot; the post already shows the
		// game as full
	default:
		log.Printf("error applying %s signal on message %s: %v", kind, messageID, err)
	}
}

// markStripped records a ➕ the bot is about to remove itself
func (b *Bot) markStripped(messageID, userID string) {
	b.stripMu.Lock()
	defer b.stripMu.Unlock()
	b.stripped[messageID+":"+userID] = struct{}{}
}

// consumeStripped reports and clears a recorded strip
func (b *Bot) consumeStripped(messageID, userID string) bool {
	b.stripMu.Lock()
	defer b.stripMu.Unlock()
	key := messageID + ":" + userID
	_, ok := b.stripped[key]
	if ok {
		delete(b.stripped, key)
	}
	return ok
}

// channelAllowed enforces the server's channel allow-list
func (b *Bot) channelAllowed(s *discordgo.Session, server *models.Server, channelID string) bool {
	if len(server.ChannelNames) == 0 {
		return true
	}

	channel, err := s.State.Channel(channelID)
	if err != nil {
		channel, err = s.Channel(channelID)
		if err != nil {
			log.Printf("warning: could not fetch channel %s: %v", channelID, err)
			return false
		}
	}

	return server.ChannelAllowed(channel.Name)
}

// reply sends a plain message to a channel, logging failures
func (b *Bot) reply(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("warning: could not send message to channel %s: %v", channelID, err)
	}
}

// directMessage sends a plain DM to a user, logging failures
func (b *Bot) directMessage(s *discordgo.Session, userID, content string) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("warning: could not open DM channel for user %s: %v", userID, err)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, content); err != nil {
		log.Printf("warning: could not DM user %s: %v", userID, err)
	}
}

// memberName picks the best display name for a guild member
func memberName(member *discordgo.Member) string {
	if member == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		return member.User.Username
	}
	return ""
}

// isAdmin reports whether the member holds the configured admin role
func (b *Bot) isAdmin(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	if member == nil {
		return false
	}

	roles, err := guildRoles(s, guildID)
	if err != nil {
		log.Printf("warning: could not fetch roles for guild %s: %v", guildID, err)
		return false
	}

	adminRoleID := ""
	for _, role := range roles {
		if role.Name == b.adminRole {
			adminRoleID = role.ID
			break
		}
	}
	if adminRoleID == "" {
		return false
	}

	for _, roleID := range member.Roles {
		if roleID == adminRoleID {
			return true
		}
	}
	return false
}

// guildRoles reads roles from the state cache, falling back to the API
func guildRoles(s *discordgo.Session, guildID string) ([]*discordgo.Role, error) {
	if g, err := s.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
		return g.Roles, nil
	}
	return s.GuildRoles(guildID)
}
