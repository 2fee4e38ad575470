package messaging

// Post is platform-neutral rich message content. The Discord implementation
// renders it as an embed.
type Post struct {
	// Title is the post headline
	Title string

	// Description is the post body
	Description string

	// Fields are labeled value sections
	Fields []*PostField

	// Footer is small print below the post
	Footer string
}

// PostField is a labeled section of a post
type PostField struct {
	Name  string
	Value string
}

// User is the gateway's view of a platform user
type User struct {
	// ID is the platform identity of the user
	ID string

	// Name is the user's display name
	Name string
}

// SendPostInput contains the post to publish and its destination
type SendPostInput struct {
	ChannelID string
	Post      *Post
}

// SendPostOutput contains the published message ID, empty on failure
type SendPostOutput struct {
	MessageID string
}

// EditPostInput contains the replacement content for a posted message
type EditPostInput struct {
	ChannelID string
	MessageID string
	Post      *Post
}

// DeleteMessageInput identifies the message to remove
type DeleteMessageInput struct {
	ChannelID string
	MessageID string
}

// AddReactionInput identifies the message and reaction symbol
type AddReactionInput struct {
	ChannelID string
	MessageID string
	Emoji     string
}

// RemoveReactionInput identifies the reaction to remove for a user
type RemoveReactionInput struct {
	ChannelID string
	MessageID string
	Emoji     string
	UserID    string
}

// ClearReactionsInput identifies the message to strip of reactions
type ClearReactionsInput struct {
	ChannelID string
	MessageID string
}

// SendDirectMessageInput contains a plain text DM
type SendDirectMessageInput struct {
	UserID  string
	Content string
}

// SendDirectPostInput contains a rich DM
type SendDirectPostInput struct {
	UserID string
	Post   *Post
}

// FetchUserInput identifies the user to resolve
type FetchUserInput struct {
	UserID string
}

// FetchUserOutput contains the resolved user, nil when inaccessible
type FetchUserOutput struct {
	User *User
}
