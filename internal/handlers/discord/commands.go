package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/gatherbot/gatherbot/internal/services/game"
	"github.com/gatherbot/gatherbot/internal/services/guild"
)

var mentionPattern = regexp.MustCompile(`^<@!?\d+>$`)

// buildRegistry registers every command the bot responds to
func (b *Bot) buildRegistry() *Registry {
	registry := NewRegistry()

	registry.Register(&Command{
		Name:    "lfg",
		Help:    "Request a game. Accepts `size:N`, @mentions to invite, and tags.",
		AllowDM: false,
		Run:     b.runLFG,
	})
	registry.Register(&Command{
		Name:    "leave",
		Help:    "Leave the pending game you are waiting in.",
		AllowDM: true,
		Run:     b.runLeave,
	})
	registry.Register(&Command{
		Name:    "help",
		Help:    "Sends you this help message.",
		AllowDM: true,
		Run:     b.runHelp,
	})
	registry.Register(&Command{
		Name:    "about",
		Help:    "Show information about this bot.",
		AllowDM: true,
		Run:     b.runAbout,
	})
	registry.Register(&Command{
		Name:    "gather",
		Help:    "Admin only. Subcommands: config, prefix, expire, channels.",
		AllowDM: false,
		Run:     b.runGather,
	})

	return registry
}

// runLFG handles the lfg command: parse the request, create the game, and
// relay rejections back to the channel
func (b *Bot) runLFG(ctx context.Context, cc *CommandContext) error {
	size := game.DefaultGameSize
	var tags []string
	var title string

	params := cc.Params
	for i := 0; i < len(params); i++ {
		token := params[i]
		switch {
		case strings.HasPrefix(strings.ToLower(token), "size:"):
			n, err := strconv.Atoi(token[len("size:"):])
			if err != nil {
				b.reply(cc.Session, cc.Message.ChannelID, "I did not understand that game size.")
				return nil
			}
			size = n
		case strings.HasPrefix(strings.ToLower(token), "title:"):
			// title: swallows the rest of the request
			parts := append([]string{token[len("title:"):]}, params[i+1:]...)
			title = strings.TrimSpace(strings.Join(parts, " "))
			i = len(params)
		case mentionPattern.MatchString(token):
			// invites come from the parsed mention list below
		default:
			tags = append(tags, token)
		}
	}

	invites := make([]*game.Invite, 0, len(cc.Message.Mentions))
	for _, mention := range cc.Message.Mentions {
		if mention.Bot {
			continue
		}
		invites = append(invites, &game.Invite{
			UserID:   mention.ID,
			UserName: mention.Username,
		})
	}

	out, err := b.gameService.CreateGame(ctx, &game.CreateGameInput{
		GuildID:     cc.Message.GuildID,
		ChannelID:   cc.Message.ChannelID,
		CreatorID:   cc.Message.Author.ID,
		CreatorName: authorName(cc),
		Size:        size,
		Title:       title,
		TagNames:    tags,
		Invites:     invites,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrInvalidSize):
			b.reply(cc.Session, cc.Message.ChannelID, "Games need at least 2 players.")
		case errors.Is(err, game.ErrTooManyInvites):
			b.reply(cc.Session, cc.Message.ChannelID, "You invited more players than the game has seats.")
		case errors.Is(err, game.ErrAlreadyWaiting):
			b.reply(cc.Session, cc.Message.ChannelID, fmt.Sprintf(
				"You are already waiting in a game. Use `%sleave` first.", cc.Prefix))
		case errors.Is(err, game.ErrInviteeAlreadyWaiting):
			b.reply(cc.Session, cc.Message.ChannelID, "One of the players you invited is already waiting in another game.")
		default:
			return fmt.Errorf("failed to create game: %w", err)
		}
		return nil
	}

	if !out.Posted {
		b.reply(cc.Session, cc.Message.ChannelID,
			"Invitations sent. The game will be posted once everyone responds.")
	}
	return nil
}

// runLeave handles the leave command
func (b *Bot) runLeave(ctx context.Context, cc *CommandContext) error {
	_, err := b.gameService.LeavePending(ctx, &game.LeavePendingInput{
		UserID: cc.Message.Author.ID,
	})
	if err != nil {
		if errors.Is(err, game.ErrNotWaiting) {
			b.reply(cc.Session, cc.Message.ChannelID, "You are not waiting in any game.")
			return nil
		}
		return fmt.Errorf("failed to leave game: %w", err)
	}

	b.reply(cc.Session, cc.Message.ChannelID, "You have left the game.")
	return nil
}

// runHelp DMs the requester a usage summary built from the registry
func (b *Bot) runHelp(ctx context.Context, cc *CommandContext) error {
	var sb strings.Builder
	sb.WriteString("__**GatherBot Commands**__\n\n")
	for _, name := range b.registry.Names() {
		cmd := b.registry.Get(name)
		sb.WriteString(fmt.Sprintf("`%s%s` — %s\n", cc.Prefix, cmd.Name, cmd.Help))
	}
	sb.WriteString("\nReact to a game post with ➕ to join it or ➖ to leave it.")

	b.directMessage(cc.Session, cc.Message.Author.ID, sb.String())

	if !cc.IsDM {
		b.reply(cc.Session, cc.Message.ChannelID, "Right back at you, check your DMs!")
	}
	return nil
}

// runAbout handles the about command
func (b *Bot) runAbout(ctx context.Context, cc *CommandContext) error {
	if _, err := cc.Session.ChannelMessageSendEmbed(cc.Message.ChannelID, aboutEmbed()); err != nil {
		log.Printf("warning: could not send about embed: %v", err)
	}
	return nil
}

// runGather handles the admin configuration command
func (b *Bot) runGather(ctx context.Context, cc *CommandContext) error {
	if !b.isAdmin(cc.Session, cc.Message.GuildID, cc.Message.Member) {
		b.reply(cc.Session, cc.Message.ChannelID, fmt.Sprintf(
			"You need the %s role to use that command.", b.adminRole))
		return nil
	}

	if len(cc.Params) == 0 {
		b.reply(cc.Session, cc.Message.ChannelID,
			"Available subcommands: config, prefix, expire, channels.")
		return nil
	}

	sub := strings.ToLower(cc.Params[0])
	args := cc.Params[1:]

	switch sub {
	case "config":
		return b.runGatherConfig(ctx, cc)
	case "prefix":
		return b.runGatherPrefix(ctx, cc, args)
	case "expire":
		return b.runGatherExpire(ctx, cc, args)
	case "channels":
		return b.runGatherChannels(ctx, cc, args)
	default:
		b.reply(cc.Session, cc.Message.ChannelID, fmt.Sprintf(
			"Unknown subcommand %q. Available: config, prefix, expire, channels.", sub))
		return nil
	}
}

func (b *Bot) runGatherConfig(ctx context.Context, cc *CommandContext) error {
	out, err := b.guildService.GetConfig(ctx, &guild.GetConfigInput{
		GuildID: cc.Message.GuildID,
	})
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	if _, err := cc.Session.ChannelMessageSendEmbed(cc.Message.ChannelID, configEmbed(out.Server)); err != nil {
		log.Printf("warning: could not send config embed: %v", err)
	}
	return nil
}

func (b *Bot) runGatherPrefix(ctx context.Context, cc *CommandContext, args []string) error {
	if len(args) == 0 {
		b.reply(cc.Session, cc.Message.ChannelID, "Usage: gather prefix <new-prefix>")
		return nil
	}

	out, err := b.guildService.SetPrefix(ctx, &guild.SetPrefixInput{
		GuildID: cc.Message.GuildID,
		Prefix:  args[0],
	})
	if err != nil {
		return fmt.Errorf("failed to set prefix: %w", err)
	}

	b.reply(cc.Session, cc.Message.ChannelID, fmt.Sprintf(
		"Prefix updated. Commands now start with `%s`.", out.Prefix))
	return nil
}

func (b *Bot) runGatherExpire(ctx context.Context, cc *CommandContext, args []string) error {
	if len(args) == 0 {
		b.reply(cc.Session, cc.Message.ChannelID, "Usage: gather expire <minutes>")
		return nil
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		b.reply(cc.Session, cc.Message.ChannelID, "Expiry must be a number of minutes.")
		return nil
	}

	if err := b.guildService.SetExpiry(ctx, &guild.SetExpiryInput{
		GuildID: cc.Message.GuildID,
		Minutes: minutes,
	}); err != nil {
		if errors.Is(err, guild.ErrInvalidExpiry) {
			b.reply(cc.Session, cc.Message.ChannelID, "Expiry must be between 1 and 60 minutes.")
			return nil
		}
		return fmt.Errorf("failed to set expiry: %w", err)
	}

	b.reply(cc.Session, cc.Message.ChannelID, fmt.Sprintf(
		"Pending games now expire after %d minute(s) of inactivity.", minutes))
	return nil
}

func (b *Bot) runGatherChannels(ctx context.Context, cc *CommandContext, args []string) error {
	channels := make([]string, 0, len(args))
	for _, arg := range args {
		channels = append(channels, strings.TrimPrefix(arg, "#"))
	}

	if err := b.guildService.SetChannels(ctx, &guild.SetChannelsInput{
		GuildID:      cc.Message.GuildID,
		ChannelNames: channels,
	}); err != nil {
		return fmt.Errorf("failed to set channels: %w", err)
	}

	if len(channels) == 0 {
		b.reply(cc.Session, cc.Message.ChannelID, "Channel restrictions cleared. I will respond in every channel.")
	} else {
		b.reply(cc.Session, cc.Message.ChannelID, fmt.Sprintf(
			"I will now only respond in: #%s.", strings.Join(channels, ", #")))
	}
	return nil
}

// authorName picks the best display name for the command author
func authorName(cc *CommandContext) string {
	if cc.Message.Member != nil && cc.Message.Member.Nick != "" {
		return cc.Message.Member.Nick
	}
	return cc.Message.Author.Username
}
