package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/loveletter/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/loveletter/internal/models"
)

// Repository persists the routing records of hosted games
type Repository interface {
	// SaveGame persists a game and its channel mapping
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByChannel retrieves the game hosted in a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error)

	// DeleteGame removes a game and its channel mapping
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetOpenGames retrieves every game that is not completed
	GetOpenGames(ctx context.Context, input *GetOpenGamesInput) (*GetOpenGamesOutput, error)
}
