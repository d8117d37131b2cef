package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/loveletter/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/loveletter/internal/models"
)

// Repository maps chat users to the game they are playing
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInGame retrieves all players in a game
	GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error)

	// UpdatePlayerGame moves a player to another game. An empty game ID
	// means the player left.
	UpdatePlayerGame(ctx context.Context, input *UpdatePlayerGameInput) error

	// ClearGame detaches every player from a game
	ClearGame(ctx context.Context, input *ClearGameInput) error
}
