package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        GameError = "game not found"
	ErrPlayerAlreadyInGame GameError = "player already in game"
	ErrGameAlreadyExists   GameError = "game already exists for this channel"
	ErrPlayerNotInGame     GameError = "player not in game"
	ErrGameFull            GameError = "game is at maximum capacity"
	ErrNotYourTurn         GameError = "it is not your turn"
	ErrNotGameCreator      GameError = "only the creator can do that"
	ErrInvalidInput        GameError = "invalid input"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilGameRepo         GameError = "game repository cannot be nil"
	ErrNilPlayerRepo       GameError = "player repository cannot be nil"
	ErrNilNotifier         GameError = "notifier cannot be nil"
)
