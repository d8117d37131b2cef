package game

import (
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/common/uuid"
	"github.com/KirkDiggler/loveletter/internal/engine"
	"github.com/KirkDiggler/loveletter/internal/models"
	gameRepo "github.com/KirkDiggler/loveletter/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/loveletter/internal/repositories/player"
	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

// DefaultMaxPlayers caps the roster when Config.MaxPlayers is zero
const DefaultMaxPlayers = 12

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game
	MaxPlayers int

	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	// Notifier delivers engine messages to players
	Notifier engine.Notifier

	// Optional dependencies, defaulted when nil
	Shuffler      shuffle.Shuffler
	DeckBuilder   func(double bool) []cards.Card
	Clock         quartz.Clock
	UUIDGenerator uuid.Generator
	Logger        *logrus.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// ChannelID is the Discord channel ID where the game is being played
	ChannelID string

	// CreatorID is the Discord user ID of the player creating the game
	CreatorID string

	// CreatorName is the display name of the player creating the game
	CreatorName string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	// ChannelID is the channel hosting the lobby
	ChannelID string

	PlayerID   string
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game *models.Game

	// DoubleDeck is set when the second deck is in use after the join
	DoubleDeck bool
}

// LeaveGameInput contains parameters for leaving a game
type LeaveGameInput struct {
	PlayerID string
}

// LeaveGameOutput contains the result of leaving a game
type LeaveGameOutput struct {
	GameID string

	// Closed is set when the last player left and the game was dropped
	Closed bool
}

// SetDoubleDeckInput contains parameters for toggling the second deck
type SetDoubleDeckInput struct {
	PlayerID string
	Enabled  bool
}

// SetDoubleDeckOutput contains the result of toggling the second deck
type SetDoubleDeckOutput struct {
	DoubleDeck bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	PlayerID string
}

// RestartGameInput contains parameters for restarting a game
type RestartGameInput struct {
	PlayerID string
}

// SelectCardInput contains the card the dealer plays
type SelectCardInput struct {
	PlayerID string
	Card     string
}

// SelectVictimInput contains the name of the chosen victim
type SelectVictimInput struct {
	PlayerID string
	Victim   string
}

// GuessCardInput contains the guessed card name
type GuessCardInput struct {
	PlayerID string
	Card     string
}

// PlayOutput describes the game after an accepted input
type PlayOutput struct {
	GameID string
	State  engine.State

	// DealerID is the player expected to act next
	DealerID string

	// Options are the answers the dealer may currently give
	Options []string

	GameOver bool
	Winner   string
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameByChannelInput contains parameters for retrieving a game by channel
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameByPlayerInput contains parameters for retrieving a player's game
type GetGameByPlayerInput struct {
	PlayerID string
}

// GetGameOutput pairs the stored record with a live view of the match
type GetGameOutput struct {
	Game     *models.Game
	Snapshot *engine.Snapshot
}

// GetHandInput contains parameters for retrieving a hand
type GetHandInput struct {
	PlayerID string
}

// GetHandOutput contains a player's cards
type GetHandOutput struct {
	GameID string
	Cards  []cards.Card

	// Options is set when the player is the dealer
	Options []string
	State   engine.State
}

// AbandonGameInput contains parameters for dropping a game
type AbandonGameInput struct {
	PlayerID string
}

// AbandonGameOutput contains the result of dropping a game
type AbandonGameOutput struct {
	GameID    string
	PlayerIDs []string
}

// PruneStaleGamesInput contains parameters for pruning stored games
type PruneStaleGamesInput struct {
}

// PruneStaleGamesOutput lists the pruned games
type PruneStaleGamesOutput struct {
	GameIDs []string
}
