package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/loveletter/internal/shuffle"
	"github.com/KirkDiggler/loveletter/internal/shuffle/mocks"
)

func TestDefinitions(t *testing.T) {
	counts := map[Card]int{
		Princess: 1, Countess: 1, King: 1, Prince: 2,
		Maid: 2, Baron: 2, Priest: 2, Guard: 5,
	}
	values := map[Card]int{}

	for _, c := range All() {
		assert.Equal(t, counts[c], c.CountInDeck(), c.Name())
		_, dup := values[c]
		assert.False(t, dup)
		values[c] = c.Value()
	}

	assert.True(t, Guard.NeedsGuess())
	for _, c := range All()[:7] {
		assert.False(t, c.NeedsGuess(), c.Name())
	}

	targeted := []Card{Guard, Priest, Baron, Prince, King}
	for _, c := range All() {
		assert.Equal(t, contains(targeted, c), c.Targeted(), c.Name())
	}
	assert.False(t, None.Targeted())
	assert.Equal(t, 0, None.Value())
}

func contains(cs []Card, c Card) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, Princess.Compare(Guard))
	assert.Equal(t, -1, Baron.Compare(Maid))
	assert.Equal(t, 0, Prince.Compare(Prince))
}

func TestByName(t *testing.T) {
	c, ok := ByName("  countess ")
	require.True(t, ok)
	assert.Equal(t, Countess, c)

	_, ok = ByName("Joker")
	assert.False(t, ok)

	_, ok = ByName("")
	assert.False(t, ok)
}

func TestGuessOptionsExcludeGuard(t *testing.T) {
	options := GuessOptions()
	assert.Len(t, options, 7)
	assert.NotContains(t, options, "Guard")
	assert.Equal(t, "Princess", options[0])
}

func TestStandard(t *testing.T) {
	deck := Standard(false)
	assert.Len(t, deck, 16)
	assert.Equal(t, Guard, deck[0])
	assert.Equal(t, Princess, deck[15])

	double := Standard(true)
	assert.Len(t, double, 32)
	princesses := 0
	for _, c := range double {
		if c == Princess {
			princesses++
		}
	}
	assert.Equal(t, 2, princesses)
}

func TestDeck(t *testing.T) {
	d := NewDeck([]Card{Guard, Priest, Baron, Princess})
	d.Shuffle(shuffle.None{})

	bottom, ok := d.TakeBottom()
	require.True(t, ok)
	assert.Equal(t, Princess, bottom)

	top, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, Guard, top)
	assert.Equal(t, 2, d.Len())

	d.Insert(Maid)
	assert.Equal(t, []Card{Maid, Priest, Baron}, d.Cards())

	for !d.Empty() {
		d.Draw()
	}
	_, ok = d.Draw()
	assert.False(t, ok)
	_, ok = d.TakeBottom()
	assert.False(t, ok)
}

func TestDeckShuffleKeepsCards(t *testing.T) {
	d := NewDeck(Standard(false))
	d.Shuffle(shuffle.New(&shuffle.Config{Seed: 7}))
	assert.ElementsMatch(t, Standard(false), d.Cards())
}

func TestDeckShuffleUsesShuffler(t *testing.T) {
	ctrl := gomock.NewController(t)
	shuffler := mocks.NewMockShuffler(ctrl)

	// reverse the deck through the swap callback
	shuffler.EXPECT().Shuffle(4, gomock.Any()).Do(func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	})

	d := NewDeck([]Card{Guard, Priest, Baron, Princess})
	d.Shuffle(shuffler)

	assert.Equal(t, []Card{Princess, Baron, Priest, Guard}, d.Cards())
}
