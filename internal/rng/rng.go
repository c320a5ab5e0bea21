// Package rng provides the single seeded random source the simulation
// draws from. Every stochastic decision in the engine — climate jitter,
// action ordering, combat rolls, mutation — goes through a Source so that
// identical seed plus identical initial world yields an identical turn
// sequence (the determinism contract of spec §5).
package rng

import "math/rand"

// Source wraps a math/rand generator with the small vocabulary of helpers
// the simulation's subsystems need. It is not safe for concurrent use —
// the simulation is single-threaded by design (spec §5).
type Source struct {
	r *rand.Rand
}

// New creates a seeded Source. The same seed always produces the same
// sequence of draws, regardless of platform.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Int returns a random integer in [0, n).
func (s *Source) Int(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// IntRange returns a random integer in [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Float returns a random float64 in [0, 1).
func (s *Source) Float() float64 {
	return s.r.Float64()
}

// FloatRange returns a random float64 in [lo, hi).
func (s *Source) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// NormFloat returns a normally-distributed float64 with the given mean
// and standard deviation.
func (s *Source) NormFloat(mean, stddev float64) float64 {
	return s.r.NormFloat64()*stddev + mean
}

// Bool returns true with the given probability in [0, 1].
func (s *Source) Bool(probability float64) bool {
	return s.r.Float64() < probability
}

// Roll returns a random integer in [0, 99], the d100 used by the feeding
// probabilistic contracts. Combat draws its rolls with IntRange(0, 100).
func (s *Source) Roll() int {
	return s.r.Intn(100)
}

// Choice returns a random index in [0, n). Panics if n <= 0 — callers are
// expected to check for an empty collection first.
func (s *Source) Choice(n int) int {
	return s.r.Intn(n)
}

// Shuffle permutes a slice of length n in place using the given swap
// function, mirroring sort.Interface-style shuffling.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Perm returns a random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.r.Perm(n)
}
