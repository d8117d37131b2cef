package engine

import "fmt"

// RuleError is a recoverable rejection of player input. The game state is left
// untouched and the host is expected to re-prompt.
type RuleError string

// Error implements the error interface
func (e RuleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyJoined       RuleError = "player already joined"
	ErrNameTaken           RuleError = "player name already taken"
	ErrAlreadyStarted      RuleError = "game already started"
	ErrTooFewPlayers       RuleError = "at least 2 players are needed"
	ErrIllegalCard         RuleError = "card is not in hand"
	ErrMustDiscardCountess RuleError = "the Countess must be discarded"
	ErrIneligibleVictim    RuleError = "player cannot be targeted"
	ErrIllegalGuess        RuleError = "card cannot be guessed"
	ErrPlayerNotFound      RuleError = "player not found"
	ErrEmptyName           RuleError = "player name cannot be empty"
	ErrDeckTooSmall        RuleError = "not enough cards for every player"

	ErrNilConfig   ConfigError = "config cannot be nil"
	ErrNilNotifier ConfigError = "notifier cannot be nil"
)

// ContractError marks calls the host should never make
type ContractError string

// Error implements the error interface
func (e ContractError) Error() string {
	return string(e)
}

// ErrWrongState matches every StateError through errors.Is
const ErrWrongState ContractError = "transition not allowed in current state"

// ConfigError reports an invalid engine configuration
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

// StateError is returned when a transition is invoked from a state that does
// not allow it. Hosts only offer legal options, so this is a contract violation.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: not allowed in state %s", e.Op, e.State)
}

// Is lets errors.Is(err, ErrWrongState) match any StateError
func (e *StateError) Is(target error) bool {
	return target == ErrWrongState
}
