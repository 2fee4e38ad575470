package game

import (
	"testing"

	"github.com/gatherbot/gatherbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamePostPending(t *testing.T) {
	game := &models.Game{
		Size:   4,
		Status: models.GameStatusPending,
		Members: []*models.Member{
			{UserID: "a"},
			{UserID: "b"},
		},
		TagNames: []string{"default"},
	}

	post := gamePost(game)

	assert.Equal(t, "**Waiting for 2 more players to join...**", post.Title)
	assert.Contains(t, post.Description, EmojiJoin)
	require.Len(t, post.Fields, 1)
	assert.Equal(t, "Players", post.Fields[0].Name)
	assert.Equal(t, "<@a>, <@b>", post.Fields[0].Value)
}

func TestGamePostPendingSingularSlot(t *testing.T) {
	game := &models.Game{
		Size:   2,
		Status: models.GameStatusPending,
		Members: []*models.Member{
			{UserID: "a"},
		},
	}

	post := gamePost(game)
	assert.Equal(t, "**Waiting for 1 more player to join...**", post.Title)
}

func TestGamePostStarted(t *testing.T) {
	game := &models.Game{
		Title:  "Friday night cube",
		Size:   2,
		Status: models.GameStatusStarted,
		Members: []*models.Member{
			{UserID: "a"},
			{UserID: "b"},
		},
		TagNames: []string{"default", "cube"},
	}

	post := gamePost(game)

	assert.Equal(t, "Friday night cube **Your game is ready!**", post.Title)
	assert.Empty(t, post.Description)
	require.Len(t, post.Fields, 2)
	assert.Equal(t, "Tags", post.Fields[1].Name)

	// The implicit default tag never shows
	assert.Equal(t, "cube", post.Fields[1].Value)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"default"}, normalizeTags(nil))
	assert.Equal(t, []string{"modern", "casual"}, normalizeTags([]string{" Modern ", "casual", "MODERN"}))

	// Overlong names are dropped, the count is capped
	long := make([]byte, maxTagLen)
	for i := range long {
		long[i] = 'x'
	}
	assert.Equal(t, []string{"a"}, normalizeTags([]string{string(long), "a"}))

	many := []string{"a", "b", "c", "d", "e", "f", "g"}
	assert.Len(t, normalizeTags(many), maxTags)
}
