package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewEntropyRNG creates an RNG seeded from the process random source. Runs
// started from it are not reproducible.
func NewEntropyRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Int64 returns a non-negative pseudo-random int64, used to seed noise sources.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Float64 returns a pseudo-random number in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// WeightedIndex picks an index with probability weights[i]/sum(weights). It
// returns -1 when there is nothing to pick from.
func (r *RNG) WeightedIndex(weights []uint32) int {
	var total uint64
	for _, w := range weights {
		total += uint64(w)
	}
	if total == 0 {
		return -1
	}
	n := r.r.Uint64N(total)
	for i, w := range weights {
		if n < uint64(w) {
			return i
		}
		n -= uint64(w)
	}
	return len(weights) - 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
