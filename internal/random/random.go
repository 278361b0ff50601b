// Package random provides the randomness sources used to generate secrets.
//
// Crypto draws from crypto/rand and is the default for real play.
// Seeded wraps a math/rand source so a given seed always yields the same
// sequence of secrets (fixed-seed play, daily mode, tests).
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
)

// Crypto picks numbers using crypto/rand.
type Crypto struct{}

// PickNumberInRange returns a uniform integer in [lo, hi].
func (Crypto) PickNumberInRange(lo, hi int) int {
	checkRange(lo, hi)
	n, err := crand.Int(crand.Reader, big.NewInt(int64(hi-lo+1)))
	if err != nil {
		panic(fmt.Sprintf("random: read crypto source: %v", err))
	}
	return lo + int(n.Int64())
}

// Seeded picks numbers from a deterministic math/rand source.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a Seeded picker for seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// PickNumberInRange returns a uniform integer in [lo, hi].
func (s *Seeded) PickNumberInRange(lo, hi int) int {
	checkRange(lo, hi)
	return lo + s.rng.Intn(hi-lo+1)
}

func checkRange(lo, hi int) {
	if hi < lo {
		panic(fmt.Sprintf("random: empty range [%d, %d]", lo, hi))
	}
}
