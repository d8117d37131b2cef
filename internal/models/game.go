package models

import (
	"time"
)

// GameStatus is the lifecycle of a hosted game as seen by the chat layer
type GameStatus string

const (
	// GameStatusWaiting indicates the game is collecting players
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates cards have been dealt
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a winner has been announced
	GameStatusCompleted GameStatus = "completed"
)

// Game is the routing record of a hosted game. The cards themselves live in
// memory only.
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// ChannelID is the Discord channel the game was created in
	ChannelID string

	// CreatorID is the player who created the game
	CreatorID string

	// Status is the current lifecycle state
	Status GameStatus

	// PlayerIDs contains the IDs of players in join order
	PlayerIDs []string

	// DoubleDeck reports whether the second set of cards is used
	DoubleDeck bool

	// Winner is the name of the last winner, if any
	Winner string

	// Rounds counts finished matches, restarts included
	Rounds int

	CreatedAt time.Time
	UpdatedAt time.Time

	// MessageID is the lobby message in the channel
	MessageID string
}

// HasPlayer reports whether the player is on the roster
func (g *Game) HasPlayer(playerID string) bool {
	for _, id := range g.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// RemovePlayer drops a player from the roster
func (g *Game) RemovePlayer(playerID string) {
	ids := g.PlayerIDs[:0]
	for _, id := range g.PlayerIDs {
		if id != playerID {
			ids = append(ids, id)
		}
	}
	g.PlayerIDs = ids
}
