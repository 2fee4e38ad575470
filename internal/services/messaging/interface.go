package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/gatherbot/gatherbot/internal/services/messaging Gateway

// Gateway is the narrow interface the rest of the system uses to talk to the
// messaging platform. Outbound actions are best-effort: implementations log
// delivery failures and report them through zero values rather than errors,
// so a failed notification never rolls back a committed store mutation.
type Gateway interface {
	// SendPost publishes a post to a channel; the returned message ID is
	// empty when the post could not be delivered
	SendPost(ctx context.Context, input *SendPostInput) (*SendPostOutput, error)

	// EditPost replaces the content of a previously posted message
	EditPost(ctx context.Context, input *EditPostInput) error

	// DeleteMessage removes a previously posted message
	DeleteMessage(ctx context.Context, input *DeleteMessageInput) error

	// AddReaction adds the bot's reaction to a message
	AddReaction(ctx context.Context, input *AddReactionInput) error

	// RemoveReaction removes a user's reaction from a message
	RemoveReaction(ctx context.Context, input *RemoveReactionInput) error

	// ClearReactions removes every reaction from a message
	ClearReactions(ctx context.Context, input *ClearReactionsInput) error

	// SendDirectMessage sends a plain text direct message to a user
	SendDirectMessage(ctx context.Context, input *SendDirectMessageInput) error

	// SendDirectPost sends a post as a direct message to a user
	SendDirectPost(ctx context.Context, input *SendDirectPostInput) error

	// FetchUser resolves a user; the output carries a nil user when the
	// user cannot be fetched
	FetchUser(ctx context.Context, input *FetchUserInput) (*FetchUserOutput, error)
}
