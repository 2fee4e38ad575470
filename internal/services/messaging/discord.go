package messaging

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
)

// embedColor is the accent color used for every post the bot publishes
const embedColor = 0x5A3EFD

// DiscordConfig holds configuration for the Discord gateway
type DiscordConfig struct {
	// Session is an open discordgo session
	Session *discordgo.Session
}

// discordGateway implements the Gateway interface on top of discordgo.
// Every outbound action swallows platform errors after logging them:
// not-found, forbidden, and transport failures all degrade to no-ops.
type discordGateway struct {
	session *discordgo.Session
}

// NewDiscord creates a new Discord-backed messaging gateway
func NewDiscord(cfg *DiscordConfig) (*discordGateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &discordGateway{
		session: cfg.Session,
	}, nil
}

// toEmbed renders a post as a Discord embed
func toEmbed(post *Post) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       post.Title,
		Description: post.Description,
		Color:       embedColor,
	}
	for _, field := range post.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  field.Name,
			Value: field.Value,
		})
	}
	if post.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: post.Footer}
	}
	return embed
}

// SendPost publishes a post to a channel
func (g *discordGateway) SendPost(ctx context.Context, input *SendPostInput) (*SendPostOutput, error) {
	if input == nil || input.Post == nil {
		return nil, errors.New("input and post cannot be nil")
	}

	msg, err := g.session.ChannelMessageSendEmbed(input.ChannelID, toEmbed(input.Post))
	if err != nil {
		log.Printf("warning: discord: could not send message to channel %s: %v", input.ChannelID, err)
		return &SendPostOutput{}, nil
	}

	return &SendPostOutput{MessageID: msg.ID}, nil
}

// EditPost replaces the content of a previously posted message
func (g *discordGateway) EditPost(ctx context.Context, input *EditPostInput) error {
	if input == nil || input.Post == nil {
		return errors.New("input and post cannot be nil")
	}

	if _, err := g.session.ChannelMessageEditEmbed(input.ChannelID, input.MessageID, toEmbed(input.Post)); err != nil {
		log.Printf("warning: discord: could not edit message %s: %v", input.MessageID, err)
	}

	return nil
}

// DeleteMessage removes a previously posted message
func (g *discordGateway) DeleteMessage(ctx context.Context, input *DeleteMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := g.session.ChannelMessageDelete(input.ChannelID, input.MessageID); err != nil {
		log.Printf("warning: discord: could not delete message %s: %v", input.MessageID, err)
	}

	return nil
}

// AddReaction adds the bot's reaction to a message
func (g *discordGateway) AddReaction(ctx context.Context, input *AddReactionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := g.session.MessageReactionAdd(input.ChannelID, input.MessageID, input.Emoji); err != nil {
		log.Printf("warning: discord: could not add reaction to message %s: %v", input.MessageID, err)
	}

	return nil
}

// RemoveReaction removes a user's reaction from a message
func (g *discordGateway) RemoveReaction(ctx context.Context, input *RemoveReactionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := g.session.MessageReactionRemove(input.ChannelID, input.MessageID, input.Emoji, input.UserID); err != nil {
		log.Printf("warning: discord: could not remove reaction from message %s: %v", input.MessageID, err)
	}

	return nil
}

// ClearReactions removes every reaction from a message
func (g *discordGateway) ClearReactions(ctx context.Context, input *ClearReactionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := g.session.MessageReactionsRemoveAll(input.ChannelID, input.MessageID); err != nil {
		log.Printf("warning: discord: could not clear reactions on message %s: %v", input.MessageID, err)
	}

	return nil
}

// SendDirectMessage sends a plain text direct message to a user
func (g *discordGateway) SendDirectMessage(ctx context.Context, input *SendDirectMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	channel, err := g.session.UserChannelCreate(input.UserID)
	if err != nil {
		log.Printf("warning: discord: could not open DM channel for user %s: %v", input.UserID, err)
		return nil
	}

	if _, err := g.session.ChannelMessageSend(channel.ID, input.Content); err != nil {
		log.Printf("warning: discord: could not DM user %s: %v", input.UserID, err)
	}

	return nil
}

// SendDirectPost sends a post as a direct message to a user
func (g *discordGateway) SendDirectPost(ctx context.Context, input *SendDirectPostInput) error {
	if input == nil || input.Post == nil {
		return errors.New("input and post cannot be nil")
	}

	channel, err := g.session.UserChannelCreate(input.UserID)
	if err != nil {
		log.Printf("warning: discord: could not open DM channel for user %s: %v", input.UserID, err)
		return nil
	}

	if _, err := g.session.ChannelMessageSendEmbed(channel.ID, toEmbed(input.Post)); err != nil {
		log.Printf("warning: discord: could not DM user %s: %v", input.UserID, err)
	}

	return nil
}

// FetchUser resolves a user, returning a nil user when inaccessible
func (g *discordGateway) FetchUser(ctx context.Context, input *FetchUserInput) (*FetchUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	u, err := g.session.User(input.UserID)
	if err != nil {
		log.Printf("warning: discord: could not fetch user %s: %v", input.UserID, err)
		return &FetchUserOutput{}, nil
	}

	return &FetchUserOutput{
		User: &User{
			ID:   u.ID,
			Name: u.Username,
		},
	}, nil
}
