// Package randvar provides the seeded random source that drives every
// stochastic decision in the analysis pipeline. Each pipeline run owns its
// own Source, so concurrent runs with different seeds never share state.
package randvar

import (
	"math/rand"
)

// Source is a deterministic pseudo-random generator. Two Sources created
// with the same seed produce identical draw sequences.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this Source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// IntRange returns a uniform integer in the half-open interval [lo, hi).
// If hi <= lo it returns lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Bernoulli returns true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Perm returns a random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Sample draws k elements uniformly without replacement from pool. When
// k exceeds the pool size the draw is clipped to the whole pool rather
// than failing; callers that need a hard error must check sizes first.
// The input slice is never modified.
func Sample[T any](s *Source, pool []T, k int) []T {
	if k <= 0 || len(pool) == 0 {
		return nil
	}
	if k > len(pool) {
		k = len(pool)
	}
	// Partial Fisher-Yates over a copy: only the first k positions are fixed.
	work := make([]T, len(pool))
	copy(work, pool)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k]
}
