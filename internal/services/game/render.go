package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gatherbot/gatherbot/internal/models"
	"github.com/gatherbot/gatherbot/internal/services/messaging"
)

// gamePost renders the summary post for a game. Pending games show the open
// slot count and join instructions; started games announce readiness.
func gamePost(game *models.Game) *messaging.Post {
	post := &messaging.Post{}

	if game.Status == models.GameStatusStarted {
		title := "**Your game is ready!**"
		if game.Title != "" {
			title = fmt.Sprintf("%s %s", game.Title, title)
		}
		post.Title = title
	} else {
		remaining := game.Remaining()
		plural := ""
		if remaining > 1 {
			plural = "s"
		}
		post.Title = fmt.Sprintf("**Waiting for %d more player%s to join...**", remaining, plural)
		post.Description = fmt.Sprintf("To join/leave this game, react with %s/%s.", EmojiJoin, EmojiLeave)
	}

	if len(game.Members) > 0 {
		mentions := make([]string, 0, len(game.Members))
		for _, m := range game.Members {
			mentions = append(mentions, fmt.Sprintf("<@%s>", m.UserID))
		}
		sort.Strings(mentions)
		post.Fields = append(post.Fields, &messaging.PostField{
			Name:  "Players",
			Value: strings.Join(mentions, ", "),
		})
	}

	if tags := displayTags(game.TagNames); len(tags) > 0 {
		post.Fields = append(post.Fields, &messaging.PostField{
			Name:  "Tags",
			Value: strings.Join(tags, ", "),
		})
	}

	return post
}

// displayTags filters out the implicit default tag
func displayTags(names []string) []string {
	tags := make([]string, 0, len(names))
	for _, name := range names {
		if name != defaultTagName {
			tags = append(tags, name)
		}
	}
	return tags
}
