package models

import (
	"time"
)

// Player is a chat user known to the bot
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name used in games
	Name string

	// CurrentGameID is the game the player is in, if any
	CurrentGameID string

	// JoinedAt is when the player joined their current game
	JoinedAt time.Time
}
