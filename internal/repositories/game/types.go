package game

import "github.com/KirkDiggler/loveletter/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameByChannelInput struct {
	ChannelID string
}

type DeleteGameInput struct {
	GameID string
}

type GetOpenGamesInput struct {
}

type GetOpenGamesOutput struct {
	Games []*models.Game
}
