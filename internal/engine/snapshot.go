package engine

import "github.com/KirkDiggler/loveletter/internal/cards"

// PlayerInfo is a read-only view of a player
type PlayerInfo struct {
	ID       string
	Name     string
	Defended bool
	Dealer   bool
}

// Snapshot is a read-only view of the whole game
type Snapshot struct {
	ID                string
	State             State
	Dealer            string
	Victim            string
	Winner            string
	DeckSize          int
	DoubleDeck        bool
	FirstCardReserved bool
	UsedCards         []cards.Card
	Active            []PlayerInfo
	Eliminated        []PlayerInfo
}

// ID returns the game id
func (g *Game) ID() string {
	return g.id
}

// State returns the current state
func (g *Game) State() State {
	return g.state
}

// DoubleDeck reports whether the second deck is on
func (g *Game) DoubleDeck() bool {
	return g.doubleDeck
}

// DealerID returns the id of the player whose turn it is, if any
func (g *Game) DealerID() string {
	if g.dealer == nil {
		return ""
	}
	return g.dealer.ID
}

// UsedCards returns the discard pile in play order
func (g *Game) UsedCards() []cards.Card {
	out := make([]cards.Card, len(g.usedCards))
	copy(out, g.usedCards)
	return out
}

// HasPlayer reports whether the player is active or eliminated in this game
func (g *Game) HasPlayer(id string) bool {
	return g.players.FindByID(id) != nil
}

// PlayerCount returns the number of active and eliminated players
func (g *Game) PlayerCount() int {
	return len(g.players.All())
}

// Hand returns the cards a player currently holds
func (g *Game) Hand(id string) ([]cards.Card, error) {
	p := g.players.FindByID(id)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return p.Hand(), nil
}

// LegalOptions returns the input set the dealer may currently answer with
func (g *Game) LegalOptions() []string {
	switch g.state {
	case StateSelectCard:
		return cards.Names(g.dealer.Hand())
	case StateSelectVictim:
		return names(g.victims)
	case StateGuessCard:
		return cards.GuessOptions()
	default:
		return nil
	}
}

// Snapshot captures the current game for display
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		ID:                g.id,
		State:             g.state,
		DeckSize:          g.deck.Len(),
		DoubleDeck:        g.doubleDeck,
		FirstCardReserved: g.firstCard != cards.None,
		UsedCards:         g.UsedCards(),
		Active:            g.infos(g.players.Active()),
		Eliminated:        g.infos(g.players.Eliminated()),
	}
	if g.dealer != nil {
		s.Dealer = g.dealer.Name
	}
	if g.victim != nil {
		s.Victim = g.victim.Name
	}
	if g.winner != nil {
		s.Winner = g.winner.Name
	}
	return s
}

func (g *Game) infos(players []*Player) []PlayerInfo {
	out := make([]PlayerInfo, len(players))
	for i, p := range players {
		out[i] = PlayerInfo{
			ID:       p.ID,
			Name:     p.Name,
			Defended: p.Defended,
			Dealer:   p.Same(g.dealer) && g.state != StateGameOver,
		}
	}
	return out
}
