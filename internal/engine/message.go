package engine

import "github.com/KirkDiggler/loveletter/internal/cards"

// MessageKind identifies an outbound notification. Rendering into text is left
// to the host.
type MessageKind string

const (
	MessagePlayerJoined      MessageKind = "player_joined"
	MessagePlayerLeft        MessageKind = "player_left"
	MessageDoubleDeckAuto    MessageKind = "double_deck_auto"
	MessageDoubleDeckOn      MessageKind = "double_deck_on"
	MessageDoubleDeckOff     MessageKind = "double_deck_off"
	MessageGameStarted       MessageKind = "game_started"
	MessageCardDealt         MessageKind = "card_dealt"
	MessageTurnStarted       MessageKind = "turn_started"
	MessageLastTurn          MessageKind = "last_turn"
	MessageCardDrawn         MessageKind = "card_drawn"
	MessageChooseCard        MessageKind = "choose_card"
	MessageCountessReminder  MessageKind = "countess_reminder"
	MessageChooseVictim      MessageKind = "choose_victim"
	MessageChooseGuess       MessageKind = "choose_guess"
	MessageNoTarget          MessageKind = "no_target"
	MessagePrincessDiscarded MessageKind = "princess_discarded"
	MessageCountessDiscarded MessageKind = "countess_discarded"
	MessageKingSwap          MessageKind = "king_swap"
	MessageKingReceived      MessageKind = "king_received"
	MessagePrinceDiscard     MessageKind = "prince_discard"
	MessagePrincePrincess    MessageKind = "prince_princess"
	MessageMaidProtected     MessageKind = "maid_protected"
	MessageBaronWon          MessageKind = "baron_won"
	MessageBaronLost         MessageKind = "baron_lost"
	MessageBaronTie          MessageKind = "baron_tie"
	MessagePriestPeek        MessageKind = "priest_peek"
	MessagePriestReveal      MessageKind = "priest_reveal"
	MessageGuardHit          MessageKind = "guard_hit"
	MessageGuardMiss         MessageKind = "guard_miss"
	MessageEliminated        MessageKind = "eliminated"
	MessageGameOver          MessageKind = "game_over"
	MessageWon               MessageKind = "won"
	MessageLost              MessageKind = "lost"
)

// Standing is one row of the end of game ranking
type Standing struct {
	Rank int
	Name string
	Card cards.Card
}

// Message is a single outbound notification. Only the fields relevant to Kind
// are populated.
type Message struct {
	Kind MessageKind

	// Player is the acting player's name, usually the dealer
	Player string

	// Target is the victim's name
	Target string

	Card  cards.Card
	Count int

	// Players lists names, e.g. turn order or eliminated players
	Players   []string
	Standings []Standing

	// Options is the legal input set the recipient may answer with
	Options []string
}

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/loveletter/internal/engine Notifier

// Notifier delivers messages to players. It is implemented by the host
// transport and called synchronously while an event is processed.
type Notifier interface {
	// Notify sends a message to a single player
	Notify(playerID string, msg *Message)

	// Broadcast sends a message to every listed player
	Broadcast(playerIDs []string, msg *Message)
}
