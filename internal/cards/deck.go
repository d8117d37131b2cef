package cards

import "github.com/KirkDiggler/loveletter/internal/shuffle"

// Deck is an ordered pile of cards. Index 0 is the top.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck holding a copy of cards in the given order
func NewDeck(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle reorders the deck using s
func (d *Deck) Shuffle(s shuffle.Shuffler) {
	s.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return None, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// TakeBottom removes and returns the bottom card. It is used to set aside the
// face-down first card before dealing.
func (d *Deck) TakeBottom() (Card, bool) {
	if len(d.cards) == 0 {
		return None, false
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, true
}

// Insert puts c on top of the deck
func (d *Deck) Insert(c Card) {
	d.cards = append([]Card{c}, d.cards...)
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether no cards are left
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
