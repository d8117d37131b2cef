package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/loveletter/internal/shuffle Shuffler

// Shuffler randomly permutes a sequence of n elements through swap
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Random provides shuffling backed by math/rand
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random shuffler
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new random shuffler
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle performs a Fisher-Yates shuffle. It is safe to share one Random
// between games.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.random.Shuffle(n, swap)
}

// Intn returns a random number in [0, n)
func (r *Random) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(n)
}

// None leaves every sequence in its original order
type None struct{}

// Shuffle does nothing
func (None) Shuffle(int, func(i, j int)) {}
