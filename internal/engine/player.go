package engine

import "github.com/KirkDiggler/loveletter/internal/cards"

// Player is a participant of a single game
type Player struct {
	// ID addresses outbound messages
	ID string

	// Name is unique within a game and used to select victims
	Name string

	// Card is held between turns
	Card cards.Card

	// NewCard is held only during the player's own turn
	NewCard cards.Card

	// Defended is set by the Maid until the player's next turn starts
	Defended bool
}

// Same compares players by identity key
func (p *Player) Same(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// Hand returns the cards currently held
func (p *Player) Hand() []cards.Card {
	var hand []cards.Card
	if p.Card != cards.None {
		hand = append(hand, p.Card)
	}
	if p.NewCard != cards.None {
		hand = append(hand, p.NewCard)
	}
	return hand
}

// Holds reports whether c is one of the held cards
func (p *Player) Holds(c cards.Card) bool {
	return c != cards.None && (p.Card == c || p.NewCard == c)
}

func (p *Player) clearHand() {
	p.Card = cards.None
	p.NewCard = cards.None
	p.Defended = false
}
