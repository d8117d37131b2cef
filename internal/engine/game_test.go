package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/loveletter/internal/cards"
	"github.com/KirkDiggler/loveletter/internal/shuffle"
)

const (
	g1 = cards.Guard
	pr = cards.Priest
	ba = cards.Baron
	ma = cards.Maid
	pc = cards.Prince
	ki = cards.King
	co = cards.Countess
	ps = cards.Princess
)

func TestNewRequiresNotifier(t *testing.T) {
	_, err := New(nil)
	assert.Equal(t, ErrNilConfig, err)

	_, err = New(&Config{})
	assert.Equal(t, ErrNilNotifier, err)
}

func TestStartDealsFromTheTop(t *testing.T) {
	g, rec := newStackedGame(t, cards.Standard(false), "alice", "bob")

	require.NoError(t, g.Start())

	// standard deck ascends so the set aside card is the Princess
	assert.Equal(t, StateSelectCard, g.State())
	assert.Equal(t, ps, g.firstCard)
	assert.Equal(t, g1, player(g, "alice").Card)
	assert.Equal(t, g1, player(g, "bob").Card)
	assert.Equal(t, g1, player(g, "alice").NewCard)
	assert.Equal(t, id("alice"), g.DealerID())
	assert.Equal(t, 12, g.deck.Len())

	assert.Equal(t, &Message{Kind: MessageCardDealt, Card: g1}, rec.direct[id("bob")][0])
	assert.Equal(t, []string{"alice", "bob"}, rec.broadcast(MessageGameStarted).Players)
	assert.Equal(t, 12, rec.broadcast(MessageTurnStarted).Count)
	assert.Equal(t, []string{"Guard", "Guard"}, rec.sentTo(id("alice"), MessageChooseCard).Options)
	assert.Nil(t, rec.broadcast(MessageLastTurn))
	assert.Equal(t, 16, cardsInPlay(g))
}

func TestStartNeedsTwoPlayers(t *testing.T) {
	g, _ := newStackedGame(t, cards.Standard(false), "alice")

	err := g.Start()

	assert.Equal(t, ErrTooFewPlayers, err)
	assert.Equal(t, StateNotStarted, g.State())
}

func TestStartRejectsTinyDeck(t *testing.T) {
	g, _ := newStackedGame(t, []cards.Card{g1, g1, g1}, "alice", "bob")

	assert.Equal(t, ErrDeckTooSmall, g.Start())
	assert.Equal(t, StateNotStarted, g.State())
}

func TestStartTwiceIsWrongState(t *testing.T) {
	g, _ := startStackedGame(t, cards.Standard(false), "alice", "bob")

	err := g.Start()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongState))
	var stateErr *StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, StateSelectCard, stateErr.State)
}

func TestActionsInWrongStateAreRejected(t *testing.T) {
	g, _ := newStackedGame(t, cards.Standard(false), "alice", "bob")

	assert.ErrorIs(t, g.SelectCard("Guard"), ErrWrongState)

	require.NoError(t, g.Start())
	assert.ErrorIs(t, g.SelectVictim("bob"), ErrWrongState)
	assert.ErrorIs(t, g.GuessCard("Priest"), ErrWrongState)
	assert.Equal(t, StateSelectCard, g.State())
}

func TestAddPlayerRules(t *testing.T) {
	g, rec := newStackedGame(t, cards.Standard(false), "alice")

	assert.Equal(t, ErrAlreadyJoined, g.AddPlayer(id("alice"), "someone"))
	assert.Equal(t, ErrNameTaken, g.AddPlayer("other", "ALICE"))
	assert.Equal(t, ErrEmptyName, g.AddPlayer("other", "  "))

	require.NoError(t, g.AddPlayer(id("bob"), "bob"))
	joined := rec.broadcast(MessagePlayerJoined)
	require.NotNil(t, joined)
	assert.Equal(t, "bob", joined.Player)
	assert.Equal(t, []string{id("alice")}, rec.recipientsOf(MessagePlayerJoined))

	require.NoError(t, g.Start())
	assert.Equal(t, ErrAlreadyStarted, g.AddPlayer(id("carol"), "carol"))
	assert.False(t, g.HasPlayer(id("carol")))
}

func TestSixthPlayerAddsSecondDeck(t *testing.T) {
	rec := newRecorder()
	g, err := New(&Config{ID: "g", Notifier: rec, Shuffler: shuffle.None{}})
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddPlayer(id(name), name))
	}
	assert.False(t, g.DoubleDeck())

	require.NoError(t, g.AddPlayer(id("f"), "f"))
	assert.True(t, g.DoubleDeck())
	assert.Equal(t, 6, rec.broadcast(MessageDoubleDeckAuto).Count)

	require.NoError(t, g.Start())
	assert.Equal(t, 32, cardsInPlay(g))
}

func TestDoubleDeckToggle(t *testing.T) {
	g, rec := newStackedGame(t, cards.Standard(false), "alice", "bob")

	require.NoError(t, g.SetDoubleDeck(true))
	assert.True(t, g.DoubleDeck())
	assert.NotNil(t, rec.broadcast(MessageDoubleDeckOn))

	require.NoError(t, g.SetDoubleDeck(false))
	assert.False(t, g.DoubleDeck())
	assert.NotNil(t, rec.broadcast(MessageDoubleDeckOff))

	require.NoError(t, g.Start())
	assert.Equal(t, ErrAlreadyStarted, g.SetDoubleDeck(true))
}

func TestRemovePlayer(t *testing.T) {
	g, _ := newStackedGame(t, []cards.Card{ps, g1, g1, ba, ba, ma}, "alice", "bob", "carol")

	require.NoError(t, g.RemovePlayer(id("carol")))
	assert.False(t, g.HasPlayer(id("carol")))
	assert.Equal(t, ErrPlayerNotFound, g.RemovePlayer(id("carol")))

	require.NoError(t, g.Start())
	assert.Equal(t, ErrAlreadyStarted, g.RemovePlayer(id("bob")))

	// alice discards the Princess and is out, so she may leave mid game
	require.NoError(t, g.SelectCard("Princess"))
	require.Equal(t, StateGameOver, g.State())
	require.NoError(t, g.RemovePlayer(id("alice")))
	require.NoError(t, g.RemovePlayer(id("bob")))
	assert.Equal(t, 0, g.PlayerCount())
}

func TestTurnsRotate(t *testing.T) {
	deck := make([]cards.Card, 20)
	for i := range deck {
		deck[i] = ma
	}
	g, _ := startStackedGame(t, deck, "alice", "bob", "carol")

	var dealers []string
	for i := 0; i < 12; i++ {
		require.Equal(t, StateSelectCard, g.State())
		dealers = append(dealers, g.Snapshot().Dealer)
		require.NoError(t, g.SelectCard("Maid"))
	}

	assert.Equal(t, []string{
		"alice", "bob", "carol",
		"alice", "bob", "carol",
		"alice", "bob", "carol",
		"alice", "bob", "carol",
	}, dealers)
}

func TestSelectCardMustBeHeld(t *testing.T) {
	g, _ := startStackedGame(t, []cards.Card{g1, pr, ma, ba, ba, ki}, "alice", "bob")

	assert.Equal(t, ErrIllegalCard, g.SelectCard("King"))
	assert.Equal(t, ErrIllegalCard, g.SelectCard("Joker"))
	assert.Equal(t, StateSelectCard, g.State())
}

func TestSelectCardKeepsTheOtherCard(t *testing.T) {
	g, _ := startStackedGame(t, []cards.Card{ma, pr, g1, ba, ba, ki}, "alice", "bob")

	// alice was dealt the Maid and plays it, keeping the Guard she drew
	require.NoError(t, g.SelectCard("maid"))

	alice := player(g, "alice")
	assert.Equal(t, g1, alice.Card)
	assert.Equal(t, cards.None, alice.NewCard)
	assert.True(t, alice.Defended)
	assert.Equal(t, []cards.Card{ma}, g.UsedCards())
}

func TestCountessMustBeDiscarded(t *testing.T) {
	for _, forced := range []cards.Card{ki, pc} {
		t.Run(forced.Name(), func(t *testing.T) {
			g, rec := startStackedGame(t, []cards.Card{co, g1, forced, ba, ba, ma}, "alice", "bob")

			err := g.SelectCard(forced.Name())

			assert.Equal(t, ErrMustDiscardCountess, err)
			assert.Equal(t, StateSelectCard, g.State())
			assert.ElementsMatch(t, []cards.Card{co, forced}, player(g, "alice").Hand())
			assert.Equal(t, MessageCountessReminder, rec.lastTo(id("alice")).Kind)
			assert.Empty(t, g.UsedCards())

			require.NoError(t, g.SelectCard("Countess"))
			assert.NotNil(t, rec.broadcast(MessageCountessDiscarded))
			assert.Equal(t, forced, player(g, "alice").Card)
			assert.Equal(t, id("bob"), g.DealerID())
		})
	}
}

func TestCountessMayBeKeptWithOtherCards(t *testing.T) {
	g, _ := startStackedGame(t, []cards.Card{co, g1, ma, ba, ba, pr}, "alice", "bob")

	require.NoError(t, g.SelectCard("Maid"))
	assert.Equal(t, co, player(g, "alice").Card)
}

func TestPrincessDiscardLoses(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{ps, g1, g1, ba, ba, ma}, "alice", "bob")

	require.NoError(t, g.SelectCard("Princess"))

	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, "bob", g.Snapshot().Winner)
	assert.False(t, g.players.IsActive(id("alice")))
	assert.Empty(t, player(g, "alice").Hand())
	assert.Equal(t, []cards.Card{ps, g1}, g.UsedCards())

	assert.NotNil(t, rec.sentTo(id("alice"), MessageEliminated))
	assert.NotNil(t, rec.sentTo(id("bob"), MessageWon))
	assert.Equal(t, "bob", rec.sentTo(id("alice"), MessageLost).Player)
	assert.ElementsMatch(t, []string{id("alice"), id("bob")}, rec.recipientsOf(MessageGameOver))
	assert.Equal(t, []string{"alice"}, rec.broadcast(MessageGameOver).Players)
	assert.Equal(t, 6, cardsInPlay(g))
}

func TestGuard(t *testing.T) {
	deck := []cards.Card{g1, pr, g1, ba, ba, ma}

	t.Run("correct guess eliminates", func(t *testing.T) {
		g, rec := startStackedGame(t, deck, "alice", "bob")

		require.NoError(t, g.SelectCard("Guard"))
		require.Equal(t, StateSelectVictim, g.State())
		assert.Equal(t, []string{"bob"}, rec.sentTo(id("alice"), MessageChooseVictim).Options)

		require.NoError(t, g.SelectVictim("Bob"))
		require.Equal(t, StateGuessCard, g.State())
		assert.Equal(t, cards.GuessOptions(), rec.lastTo(id("alice")).Options)
		assert.Equal(t, cards.GuessOptions(), g.LegalOptions())

		assert.Equal(t, ErrIllegalGuess, g.GuessCard("Guard"))
		assert.Equal(t, ErrIllegalGuess, g.GuessCard("Joker"))
		assert.Equal(t, StateGuessCard, g.State())

		require.NoError(t, g.GuessCard("priest"))
		assert.Equal(t, StateGameOver, g.State())
		assert.Equal(t, "alice", g.Snapshot().Winner)
		assert.Equal(t, pr, rec.broadcast(MessageGuardHit).Card)
		assert.Equal(t, 6, cardsInPlay(g))
	})

	t.Run("wrong guess does nothing", func(t *testing.T) {
		g, rec := startStackedGame(t, deck, "alice", "bob")

		require.NoError(t, g.SelectCard("Guard"))
		require.NoError(t, g.SelectVictim("bob"))
		require.NoError(t, g.GuessCard("King"))

		assert.NotNil(t, rec.broadcast(MessageGuardMiss))
		assert.True(t, g.players.IsActive(id("bob")))
		assert.Equal(t, id("bob"), g.DealerID())
		assert.Equal(t, StateSelectCard, g.State())
	})
}

func TestSelectVictimMustBeEligible(t *testing.T) {
	g, _ := startStackedGame(t, []cards.Card{g1, pr, g1, ba, ba, ma}, "alice", "bob", "carol")

	require.NoError(t, g.SelectCard("Guard"))

	assert.Equal(t, ErrIneligibleVictim, g.SelectVictim("alice"))
	assert.Equal(t, ErrIneligibleVictim, g.SelectVictim("dave"))
	assert.Equal(t, StateSelectVictim, g.State())
	assert.ElementsMatch(t, []string{"bob", "carol"}, g.LegalOptions())
}

func TestPriestRevealsToDealerOnly(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, ki, pr, ba, ba, ma}, "alice", "bob")

	require.NoError(t, g.SelectCard("Priest"))
	require.NoError(t, g.SelectVictim("bob"))

	reveal := rec.sentTo(id("alice"), MessagePriestReveal)
	require.NotNil(t, reveal)
	assert.Equal(t, ki, reveal.Card)
	assert.Equal(t, "bob", reveal.Target)
	assert.Nil(t, rec.sentTo(id("bob"), MessagePriestReveal))
	assert.Equal(t, cards.None, rec.broadcast(MessagePriestPeek).Card)
}

func TestBaronComparesBothWays(t *testing.T) {
	cases := []struct {
		name       string
		alice, bob cards.Card
		loser      string
		kind       MessageKind
	}{
		{name: "dealer lower", alice: pr, bob: ki, loser: "alice", kind: MessageBaronLost},
		{name: "dealer higher", alice: ki, bob: pr, loser: "bob", kind: MessageBaronWon},
		{name: "tie", alice: pr, bob: pr, kind: MessageBaronTie},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, rec := startStackedGame(t, []cards.Card{tc.alice, tc.bob, ba, g1, g1, ma}, "alice", "bob")

			require.NoError(t, g.SelectCard("Baron"))
			require.NoError(t, g.SelectVictim("bob"))

			assert.NotNil(t, rec.broadcast(tc.kind))
			if tc.loser == "" {
				assert.Equal(t, 2, g.players.Len())
				assert.Equal(t, id("bob"), g.DealerID())
				return
			}

			assert.False(t, g.players.IsActive(id(tc.loser)))
			assert.Equal(t, StateGameOver, g.State())
			assert.NotEqual(t, tc.loser, g.Snapshot().Winner)
			assert.Equal(t, 6, cardsInPlay(g))
		})
	}
}

func TestKingSwapsHands(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, ma, ki, ba, ba, pr}, "alice", "bob")

	require.NoError(t, g.SelectCard("King"))
	require.NoError(t, g.SelectVictim("bob"))

	assert.Equal(t, ma, player(g, "alice").Card)
	assert.Equal(t, g1, player(g, "bob").Card)
	assert.Equal(t, ma, rec.sentTo(id("alice"), MessageKingReceived).Card)
	assert.Equal(t, g1, rec.sentTo(id("bob"), MessageKingReceived).Card)
}

func TestPrinceMakesVictimRedraw(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, pr, pc, ba, ma, ki}, "alice", "bob")

	require.NoError(t, g.SelectCard("Prince"))
	require.NoError(t, g.SelectVictim("bob"))

	assert.Equal(t, ba, player(g, "bob").Card)
	assert.Equal(t, pr, rec.broadcast(MessagePrinceDiscard).Card)
	assert.Equal(t, []cards.Card{pc, pr}, g.UsedCards())
	dealt := rec.allTo(id("bob"), MessageCardDealt)
	require.Len(t, dealt, 2)
	assert.Equal(t, ba, dealt[1].Card)
}

func TestPrinceOnPrincessEliminates(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, ps, pc, ba, ma, ki}, "alice", "bob")

	require.NoError(t, g.SelectCard("Prince"))
	require.NoError(t, g.SelectVictim("bob"))

	assert.NotNil(t, rec.broadcast(MessagePrincePrincess))
	assert.False(t, g.players.IsActive(id("bob")))
	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, "alice", g.Snapshot().Winner)
	assert.Equal(t, 6, cardsInPlay(g))
}

func TestPrinceReturnsSetAsideCardWhenDeckIsEmpty(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, pr, pc, ps}, "alice", "bob")

	// alice drew the last card
	assert.Equal(t, 0, g.deck.Len())
	assert.NotNil(t, rec.broadcast(MessageLastTurn))

	require.NoError(t, g.SelectCard("Prince"))
	require.NoError(t, g.SelectVictim("bob"))

	assert.Equal(t, ps, player(g, "bob").Card)
	assert.False(t, g.Snapshot().FirstCardReserved)
	assert.Equal(t, []cards.Card{pc, pr}, g.UsedCards())

	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, "bob", g.Snapshot().Winner)
	assert.Equal(t, 4, cardsInPlay(g))
}

func TestPrinceTargetsDealerWhenEveryoneElseIsProtected(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, pr, ma, pc, ba, ba, g1}, "alice", "bob")

	require.NoError(t, g.SelectCard("Maid"))
	require.Equal(t, id("bob"), g.DealerID())

	require.NoError(t, g.SelectCard("Prince"))
	require.Equal(t, StateSelectVictim, g.State())
	assert.Equal(t, []string{"bob"}, rec.sentTo(id("bob"), MessageChooseVictim).Options)
	assert.Equal(t, ErrIneligibleVictim, g.SelectVictim("alice"))

	require.NoError(t, g.SelectVictim("bob"))

	assert.Equal(t, ba, player(g, "bob").Card)
	assert.Equal(t, []cards.Card{ma, pc, pr}, g.UsedCards())
	assert.Equal(t, id("alice"), g.DealerID())
	assert.False(t, player(g, "alice").Defended)
}

func TestTargetedCardWithoutVictimHasNoEffect(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, pr, ma, g1, ba, ba, g1}, "alice", "bob")

	require.NoError(t, g.SelectCard("Maid"))
	rec.reset()

	// alice is protected so bob's Guard finds nobody
	require.NoError(t, g.SelectCard("Guard"))

	noTarget := rec.broadcast(MessageNoTarget)
	require.NotNil(t, noTarget)
	assert.Equal(t, "bob", noTarget.Player)
	assert.Equal(t, g1, noTarget.Card)
	assert.Nil(t, rec.sentTo(id("bob"), MessageChooseVictim))

	assert.True(t, g.players.IsActive(id("alice")))
	assert.Equal(t, pr, player(g, "bob").Card)
	assert.Equal(t, []cards.Card{ma, g1}, g.UsedCards())
	assert.Equal(t, StateSelectCard, g.State())
	assert.Equal(t, id("alice"), g.DealerID())
	assert.False(t, player(g, "alice").Defended)
}

func TestDeckRunsOutRanksByCard(t *testing.T) {
	g, rec := startStackedGame(t, []cards.Card{g1, pc, ki, ma, ps}, "alice", "bob", "carol")

	require.NoError(t, g.SelectCard("Maid"))

	require.Equal(t, StateGameOver, g.State())
	over := rec.broadcast(MessageGameOver)
	require.NotNil(t, over)
	assert.Equal(t, "carol", over.Player)
	assert.Equal(t, []Standing{
		{Rank: 1, Name: "carol", Card: ki},
		{Rank: 2, Name: "bob", Card: pc},
		{Rank: 3, Name: "alice", Card: g1},
	}, over.Standings)
	assert.NotNil(t, rec.sentTo(id("carol"), MessageWon))
	assert.NotNil(t, rec.sentTo(id("alice"), MessageLost))
	assert.NotNil(t, rec.sentTo(id("bob"), MessageLost))
	assert.False(t, g.Snapshot().Active[0].Dealer)
}

func TestTieGoesToNextInTurnOrder(t *testing.T) {
	g, _ := startStackedGame(t, []cards.Card{g1, ki, ki, ma, ps}, "alice", "bob", "carol")

	require.NoError(t, g.SelectCard("Maid"))

	// queue after alice's turn is bob, carol, alice
	assert.Equal(t, "bob", g.Snapshot().Winner)
}

func TestRestartBringsEveryoneBack(t *testing.T) {
	g, _ := startStackedGame(t, []cards.Card{ps, g1, g1, ba, ba, ma}, "alice", "bob")
	require.NoError(t, g.SelectCard("Princess"))
	require.Equal(t, StateGameOver, g.State())

	require.NoError(t, g.Restart())

	snap := g.Snapshot()
	assert.Equal(t, StateSelectCard, snap.State)
	assert.Empty(t, snap.Eliminated)
	assert.Len(t, snap.Active, 2)
	assert.Empty(t, snap.UsedCards)
	assert.Empty(t, snap.Winner)
	assert.True(t, snap.FirstCardReserved)
	assert.Equal(t, 6, cardsInPlay(g))
}

func TestRestartMidGame(t *testing.T) {
	g, _ := startStackedGame(t, cards.Standard(false), "alice", "bob", "carol")
	require.NoError(t, g.SelectCard("Guard"))
	require.Equal(t, StateSelectVictim, g.State())

	require.NoError(t, g.Restart())

	assert.Equal(t, StateSelectCard, g.State())
	assert.Equal(t, 16, cardsInPlay(g))
}

func TestHandAndSnapshot(t *testing.T) {
	g, _ := startStackedGame(t, []cards.Card{g1, pr, ma, ba, ba, ki}, "alice", "bob")

	hand, err := g.Hand(id("alice"))
	require.NoError(t, err)
	assert.Equal(t, []cards.Card{g1, ma}, hand)

	_, err = g.Hand("nobody")
	assert.Equal(t, ErrPlayerNotFound, err)

	snap := g.Snapshot()
	assert.Equal(t, "test-game", snap.ID)
	assert.Equal(t, "alice", snap.Dealer)
	assert.Equal(t, 2, snap.DeckSize)

	// the dealer moves to the back of the queue when their turn starts
	require.Len(t, snap.Active, 2)
	assert.Equal(t, PlayerInfo{ID: id("bob"), Name: "bob"}, snap.Active[0])
	assert.Equal(t, PlayerInfo{ID: id("alice"), Name: "alice", Dealer: true}, snap.Active[1])
}

// TestRandomGamesKeepInvariants plays many seeded games with random legal
// choices and checks the bookkeeping after every accepted input.
func TestRandomGamesKeepInvariants(t *testing.T) {
	all := []string{"a", "b", "c", "d", "e", "f", "g"}

	for seed := int64(1); seed <= 60; seed++ {
		count := 2 + int(seed)%6
		rng := rand.New(rand.NewSource(seed))

		rec := newRecorder()
		g, err := New(&Config{
			ID:       "random",
			Notifier: rec,
			Shuffler: shuffle.New(&shuffle.Config{Seed: seed}),
		})
		require.NoError(t, err)
		for _, name := range all[:count] {
			require.NoError(t, g.AddPlayer(id(name), name))
		}
		total := len(cards.Standard(g.DoubleDeck()))

		require.NoError(t, g.Start())

		for steps := 0; g.State() != StateGameOver; steps++ {
			require.Less(t, steps, 500, "seed %d did not finish", seed)

			options := g.LegalOptions()
			require.NotEmpty(t, options, "seed %d state %s", seed, g.State())
			choice := options[rng.Intn(len(options))]

			switch g.State() {
			case StateSelectCard:
				err = g.SelectCard(choice)
				if errors.Is(err, ErrMustDiscardCountess) {
					err = g.SelectCard(cards.Countess.Name())
				}
			case StateSelectVictim:
				err = g.SelectVictim(choice)
			case StateGuessCard:
				err = g.GuessCard(choice)
			}
			require.NoError(t, err, "seed %d", seed)

			assert.Equal(t, total, cardsInPlay(g), "seed %d", seed)
			assert.Equal(t, count, len(g.players.All()), "seed %d", seed)
			for _, p := range g.players.Eliminated() {
				assert.False(t, g.players.IsActive(p.ID))
				assert.Empty(t, p.Hand())
			}
		}

		assert.True(t, g.players.Len() == 1 || g.deck.Empty(), "seed %d", seed)
		assert.NotEmpty(t, g.Snapshot().Winner)
		assert.NotNil(t, rec.broadcast(MessageGameOver))
	}
}
