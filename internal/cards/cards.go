package cards

import "strings"

// Card is one of the eight Love Letter card types. Copies of the same type are
// indistinguishable, so a Card value doubles as its type.
type Card uint8

const (
	// None marks an empty hand slot
	None Card = iota
	Guard
	Priest
	Baron
	Maid
	Prince
	King
	Countess
	Princess
)

// definition holds the static attributes of a card type
type definition struct {
	name        string
	value       int
	targeted    bool
	needsGuess  bool
	countInDeck int
}

var definitions = [...]definition{
	None:     {name: ""},
	Guard:    {name: "Guard", value: 1, targeted: true, needsGuess: true, countInDeck: 5},
	Priest:   {name: "Priest", value: 2, targeted: true, countInDeck: 2},
	Baron:    {name: "Baron", value: 3, targeted: true, countInDeck: 2},
	Maid:     {name: "Maid", value: 4, countInDeck: 2},
	Prince:   {name: "Prince", value: 5, targeted: true, countInDeck: 2},
	King:     {name: "King", value: 6, targeted: true, countInDeck: 1},
	Countess: {name: "Countess", value: 7, countInDeck: 1},
	Princess: {name: "Princess", value: 8, countInDeck: 1},
}

// All returns every card type from the highest value to the lowest
func All() []Card {
	return []Card{Princess, Countess, King, Prince, Maid, Baron, Priest, Guard}
}

// Valid reports whether c is a real card type
func (c Card) Valid() bool {
	return c >= Guard && c <= Princess
}

// Name returns the display name, which is also the equality key used by callers
func (c Card) Name() string {
	if int(c) >= len(definitions) {
		return ""
	}
	return definitions[c].name
}

func (c Card) String() string {
	return c.Name()
}

// Value is used both for end of game scoring and Baron comparisons
func (c Card) Value() int {
	if int(c) >= len(definitions) {
		return 0
	}
	return definitions[c].value
}

// Targeted reports whether playing the card requires selecting a victim
func (c Card) Targeted() bool {
	return c.Valid() && definitions[c].targeted
}

// NeedsGuess is true only for the lowest value card
func (c Card) NeedsGuess() bool {
	return c.Valid() && definitions[c].needsGuess
}

// CountInDeck is the number of copies in a standard deck
func (c Card) CountInDeck() int {
	if !c.Valid() {
		return 0
	}
	return definitions[c].countInDeck
}

// Compare orders cards by value. It returns -1, 0 or 1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Value() < other.Value():
		return -1
	case c.Value() > other.Value():
		return 1
	default:
		return 0
	}
}

// ByName resolves a card from its display name, ignoring case and surrounding space
func ByName(name string) (Card, bool) {
	name = strings.TrimSpace(name)
	for _, c := range All() {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	return None, false
}

// Names returns the display names of the given cards
func Names(cs []Card) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}
	return names
}

// GuessOptions lists every card name a Guard may name, highest value first.
// Guessing a Guard is never allowed.
func GuessOptions() []string {
	options := make([]string, 0, len(definitions)-2)
	for _, c := range All() {
		if c.NeedsGuess() {
			continue
		}
		options = append(options, c.Name())
	}
	return options
}

// Standard builds a full deck composition in ascending value order. When double
// is set every count is doubled.
func Standard(double bool) []Card {
	copies := 1
	if double {
		copies = 2
	}

	var deck []Card
	for c := Guard; c <= Princess; c++ {
		for i := 0; i < c.CountInDeck()*copies; i++ {
			deck = append(deck, c)
		}
	}
	return deck
}
