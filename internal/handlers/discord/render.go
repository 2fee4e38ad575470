package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gatherbot/gatherbot/internal/models"
)

const embedColor = 0x5A3EFD

// configEmbed renders a guild's configuration
func configEmbed(server *models.Server) *discordgo.MessageEmbed {
	channels := "all channels"
	if len(server.ChannelNames) > 0 {
		channels = "#" + strings.Join(server.ChannelNames, ", #")
	}

	return &discordgo.MessageEmbed{
		Title: "GatherBot Configuration",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Prefix",
				Value:  fmt.Sprintf("`%s`", server.Prefix),
				Inline: true,
			},
			{
				Name:   "Expiry",
				Value:  fmt.Sprintf("%d minute(s)", server.ExpireMinutes),
				Inline: true,
			},
			{
				Name:  "Channels",
				Value: channels,
			},
		},
	}
}

// aboutEmbed renders the about message
func aboutEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "GatherBot",
		Color: embedColor,
		Description: "GatherBot helps your server gather players for games. " +
			"Request a game with the lfg command, then anyone can react with ➕ " +
			"to grab a seat. When the game fills up, everyone gets a DM.",
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use the help command for the full command list.",
		},
	}
}
