package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Command{Name: "lfg"})
	r.Register(&Command{Name: "leave"})
	r.Register(&Command{Name: "help"})
	r.Register(&Command{Name: "about"})
	return r
}

func TestRegistryNamesSorted(t *testing.T) {
	r := testRegistry()
	assert.Equal(t, []string{"about", "help", "leave", "lfg"}, r.Names())
}

func TestResolveExactMatch(t *testing.T) {
	r := testRegistry()

	cmd, matches := r.Resolve("lfg")
	require.NotNil(t, cmd)
	assert.Equal(t, "lfg", cmd.Name)
	assert.Nil(t, matches)
}

func TestResolveUniquePrefix(t *testing.T) {
	r := testRegistry()

	cmd, _ := r.Resolve("h")
	require.NotNil(t, cmd)
	assert.Equal(t, "help", cmd.Name)

	cmd, _ = r.Resolve("ab")
	require.NotNil(t, cmd)
	assert.Equal(t, "about", cmd.Name)
}

func TestResolveAmbiguousPrefix(t *testing.T) {
	r := testRegistry()

	// "l" matches both leave and lfg
	cmd, matches := r.Resolve("l")
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"leave", "lfg"}, matches)
}

func TestResolveNoMatch(t *testing.T) {
	r := testRegistry()

	cmd, matches := r.Resolve("zzz")
	assert.Nil(t, cmd)
	assert.Empty(t, matches)
}

func TestResolveExactMatchBeatsPrefix(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "game"})
	r.Register(&Command{Name: "games"})

	cmd, _ := r.Resolve("game")
	require.NotNil(t, cmd)
	assert.Equal(t, "game", cmd.Name)
}
