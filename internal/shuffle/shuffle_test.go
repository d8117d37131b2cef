package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func shuffled(s Shuffler, n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	s.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}

func TestSeededShuffleIsReproducible(t *testing.T) {
	first := shuffled(New(&Config{Seed: 42}), 16)
	second := shuffled(New(&Config{Seed: 42}), 16)

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, shuffled(None{}, 16), first)
}

func TestNoneKeepsOrder(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, shuffled(None{}, 5))
}

func TestIntnStaysInRange(t *testing.T) {
	r := New(nil)
	for i := 0; i < 100; i++ {
		v := r.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}
