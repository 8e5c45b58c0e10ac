package rng

import (
	cryptorand "crypto/rand"
	"math/big"
	"math/rand"
	"sync"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Crypto draws from crypto/rand and is used to deal hands over HTTP
// It has no state and is safe for concurrent use
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// Panics if n <= 0 or the system source fails
func (Crypto) Intn(n int) int {
	b, err := cryptorand.Int(cryptorand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seeded is a reproducible generator backed by math/rand
// It is safe for concurrent use
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a generator that produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}
