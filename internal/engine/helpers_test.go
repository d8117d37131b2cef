package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

// recorder collects messages instead of delivering them
type recorder struct {
	direct     map[string][]*Message
	broadcasts []*Message
	recipients [][]string
}

func newRecorder() *recorder {
	return &recorder{direct: make(map[string][]*Message)}
}

func (r *recorder) Notify(playerID string, msg *Message) {
	r.direct[playerID] = append(r.direct[playerID], msg)
}

func (r *recorder) Broadcast(playerIDs []string, msg *Message) {
	r.broadcasts = append(r.broadcasts, msg)
	r.recipients = append(r.recipients, playerIDs)
}

func (r *recorder) lastTo(playerID string) *Message {
	msgs := r.direct[playerID]
	if len(msgs) == 0 {
		return nil
	}
	return msgs[len(msgs)-1]
}

func (r *recorder) sentTo(playerID string, kind MessageKind) *Message {
	for _, m := range r.direct[playerID] {
		if m.Kind == kind {
			return m
		}
	}
	return nil
}

func (r *recorder) allTo(playerID string, kind MessageKind) []*Message {
	var out []*Message
	for _, m := range r.direct[playerID] {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func (r *recorder) broadcast(kind MessageKind) *Message {
	for _, m := range r.broadcasts {
		if m.Kind == kind {
			return m
		}
	}
	return nil
}

func (r *recorder) recipientsOf(kind MessageKind) []string {
	for i, m := range r.broadcasts {
		if m.Kind == kind {
			return r.recipients[i]
		}
	}
	return nil
}

func (r *recorder) reset() {
	r.direct = make(map[string][]*Message)
	r.broadcasts = nil
	r.recipients = nil
}

func id(name string) string {
	return "id-" + name
}

// newStackedGame builds an unshuffled game. With two players the deck reads:
// first player's card, second player's card, first player's draw, ... and the
// last card is set aside.
func newStackedGame(t *testing.T, deck []cards.Card, players ...string) (*Game, *recorder) {
	t.Helper()

	rec := newRecorder()
	g, err := New(&Config{
		ID:       "test-game",
		Notifier: rec,
		Shuffler: shuffle.None{},
		DeckBuilder: func(bool) []cards.Card {
			return deck
		},
	})
	require.NoError(t, err)

	for _, name := range players {
		require.NoError(t, g.AddPlayer(id(name), name))
	}
	return g, rec
}

func startStackedGame(t *testing.T, deck []cards.Card, players ...string) (*Game, *recorder) {
	t.Helper()

	g, rec := newStackedGame(t, deck, players...)
	require.NoError(t, g.Start())
	require.Equal(t, StateSelectCard, g.State())
	return g, rec
}

func cardsInPlay(g *Game) int {
	n := g.deck.Len() + len(g.usedCards)
	for _, p := range g.players.All() {
		n += len(p.Hand())
	}
	if g.firstCard != cards.None {
		n++
	}
	return n
}

func player(g *Game, name string) *Player {
	return g.players.FindByID(id(name))
}
