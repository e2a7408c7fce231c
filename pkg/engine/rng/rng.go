// Package rng provides the seeded random number source used by map generation.
package rng

import (
	"math/rand"
	"time"
)

// RNG wraps a seeded math/rand source with the helpers generators need
type RNG struct {
	seed int64
	r    *rand.Rand
}

// New creates a generator with the given seed. A seed of 0 picks one from the clock.
func New(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the generator was created with
func (g *RNG) Seed() int64 {
	return g.seed
}

// Range returns a uniform integer in [min, max). Returns min if the range is empty.
func (g *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min)
}

// Intn returns a uniform integer in [0, n)
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// CoinFlip returns true half of the time
func (g *RNG) CoinFlip() bool {
	return g.r.Intn(2) == 0
}

// SliceIndex returns a random index into a slice of length n, or false if n is 0
func (g *RNG) SliceIndex(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return g.r.Intn(n), true
}
