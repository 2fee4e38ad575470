package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gatherbot/gatherbot/internal/services/game Service

// Service defines the interface for game lifecycle and membership operations
type Service interface {
	// CreateGame creates a new pending game, posting it immediately when
	// it carries no invites
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// ConfirmInvite applies an invited user's yes/no response
	ConfirmInvite(ctx context.Context, input *ConfirmInviteInput) (*ConfirmInviteOutput, error)

	// ApplySignal reconciles a join/leave signal against the game the
	// signal's message resolves to
	ApplySignal(ctx context.Context, input *ApplySignalInput) (*ApplySignalOutput, error)

	// LeavePending removes the user from whatever pending game they are in
	LeavePending(ctx context.Context, input *LeavePendingInput) (*LeavePendingOutput, error)

	// SweepExpired reclaims every pending game past its deadline
	SweepExpired(ctx context.Context, input *SweepExpiredInput) (*SweepExpiredOutput, error)
}
