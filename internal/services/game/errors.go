package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	// Validation errors: the request itself is malformed, nothing is mutated
	ErrInvalidSize    GameError = "game size must be at least 2"
	ErrTooManyInvites GameError = "too many invitees for the requested game size"

	// Conflict errors: the request is well formed but the current state
	// forbids it, nothing is mutated
	ErrAlreadyWaiting        GameError = "user is already waiting in a pending game"
	ErrInviteeAlreadyWaiting GameError = "an invited user is already waiting in a pending game"
	ErrNotInvited            GameError = "user has no pending invite"
	ErrInviteResolved        GameError = "invite has already been confirmed"
	ErrNotWaiting            GameError = "user is not in a pending game"
	ErrGameFull              GameError = "game is at capacity"

	ErrGameNotFound GameError = "game not found"

	ErrNilConfig     GameError = "config cannot be nil"
	ErrNilGameRepo   GameError = "game repository cannot be nil"
	ErrNilServerRepo GameError = "server repository cannot be nil"
	ErrNilUserRepo   GameError = "user repository cannot be nil"
	ErrNilTagRepo    GameError = "tag repository cannot be nil"
	ErrNilGateway    GameError = "messaging gateway cannot be nil"
)
