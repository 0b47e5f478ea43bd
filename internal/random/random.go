package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the randomness the shape generator draws from
type Source interface {
	// Intn returns a value in [0, n); n <= 0 yields 0
	Intn(n int) int

	// Bool returns true or false with equal probability
	Bool() bool
}

// Roller provides seedable random numbers. It is safe for concurrent use.
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a value in [0, n)
func (r *Roller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Bool flips a coin
func (r *Roller) Bool() bool {
	return r.Intn(2) == 0
}
