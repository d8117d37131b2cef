package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/loveletter/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// RenderMessage turns an engine notification into text
	RenderMessage(ctx context.Context, input *RenderMessageInput) (*RenderMessageOutput, error)

	// GetNoticeMessage returns the text of a host notice such as "game created"
	GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetHelpMessage lists the commands
	GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error)

	// GetHintMessage is a short copy of the rules
	GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error)

	// GetUsedCardsMessage summarises the discard pile
	GetUsedCardsMessage(ctx context.Context, input *GetUsedCardsMessageInput) (*GetUsedCardsMessageOutput, error)

	// GetPlayersMessage lists the remaining players
	GetPlayersMessage(ctx context.Context, input *GetPlayersMessageInput) (*GetPlayersMessageOutput, error)
}
