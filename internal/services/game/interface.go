package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/loveletter/internal/services/game Service

import "context"

// Service hosts Love Letter games for a chat front end
type Service interface {
	// CreateGame opens a lobby in a channel with the creator as first player
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to the lobby of a channel
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes a player from their current game
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error)

	// SetDoubleDeck switches the second set of cards on or off before the start
	SetDoubleDeck(ctx context.Context, input *SetDoubleDeckInput) (*SetDoubleDeckOutput, error)

	// StartGame deals the cards
	StartGame(ctx context.Context, input *StartGameInput) (*PlayOutput, error)

	// RestartGame deals a new match to the same roster
	RestartGame(ctx context.Context, input *RestartGameInput) (*PlayOutput, error)

	// SelectCard plays one of the dealer's two cards
	SelectCard(ctx context.Context, input *SelectCardInput) (*PlayOutput, error)

	// SelectVictim picks the target of a played card
	SelectVictim(ctx context.Context, input *SelectVictimInput) (*PlayOutput, error)

	// GuessCard names the card a Guard's victim is suspected to hold
	GuessCard(ctx context.Context, input *GuessCardInput) (*PlayOutput, error)

	// GetGame returns a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByChannel returns the game hosted in a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameOutput, error)

	// GetGameByPlayer returns the game a player is in
	GetGameByPlayer(ctx context.Context, input *GetGameByPlayerInput) (*GetGameOutput, error)

	// GetHand returns the cards a player holds
	GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error)

	// AbandonGame drops a game and frees its players
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)

	// PruneStaleGames closes stored games that have no live match behind them
	PruneStaleGames(ctx context.Context, input *PruneStaleGamesInput) (*PruneStaleGamesOutput, error)
}
