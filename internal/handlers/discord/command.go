package discord

import (
	"context"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// CommandContext carries everything a command needs to run
type CommandContext struct {
	// Session is the open Discord session
	Session *discordgo.Session

	// Message is the triggering message
	Message *discordgo.MessageCreate

	// Prefix is the command prefix in effect for this message
	Prefix string

	// Params are the whitespace-delimited parameters after the command
	Params []string

	// IsDM indicates the message arrived over a direct message channel
	IsDM bool
}

// Command is a single bot command with its declared metadata
type Command struct {
	// Name invokes the command when prefixed
	Name string

	// Help is the usage text shown by the help command
	Help string

	// AllowDM indicates the command may be used in direct messages
	AllowDM bool

	// Run executes the command
	Run func(ctx context.Context, cc *CommandContext) error
}

// Registry maps command names to handlers. It is built explicitly at
// startup; nothing is discovered by reflection.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Names returns every registered command name, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named command, or nil
func (r *Registry) Get(name string) *Command {
	return r.commands[name]
}

// Resolve matches a request against registered names. An exact match wins;
// otherwise a unique prefix match resolves, and an ambiguous prefix returns
// the candidate names so the caller can suggest them.
func (r *Registry) Resolve(request string) (*Command, []string) {
	if cmd, ok := r.commands[request]; ok {
		return cmd, nil
	}

	var matches []string
	for _, name := range r.Names() {
		if strings.HasPrefix(name, request) {
			matches = append(matches, name)
		}
	}

	if len(matches) == 1 {
		return r.commands[matches[0]], nil
	}
	return nil, matches
}
