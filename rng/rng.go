// Package rng provides a small seedable random-number capability, injected
// into every optimiser call that needs randomness rather than drawn from
// process-global state.
//
// Goals:
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: callers never touch math/rand/v2 directly.
//   - No hidden global state: every consumer takes a Source parameter.
//
// Concurrency:
//   - A Source is NOT goroutine-safe (it wraps a single *rand.Rand).
//     Use Derive to create independent streams for concurrent layers.
package rng

import "math/rand/v2"

// Source is the random-number capability threaded through the optimiser's
// Optimise, OptimiseMultiplex, and MoveNodes calls and their
// candidate-community selection.
type Source interface {
	// IntN returns a pseudo-random integer in [0, n).
	IntN(n int) int
	// Float64 returns a pseudo-random float64 in [0, 1).
	Float64() float64
	// Shuffle performs an in-place Fisher-Yates shuffle of a.
	Shuffle(a []int)
	// Derive returns an independent stream decorrelated from this one by
	// stream, for per-layer substreams in multiplex optimisation.
	Derive(stream uint64) Source
}

type source struct {
	r *rand.Rand
}

// New returns a deterministic Source seeded with seed.
func New(seed uint64) Source {
	return &source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Seed is a convenience alias for New, mirroring the injected-RNG
// constructor named in the external interface (set_rng_seed in the
// original library this module's design traces back to).
func Seed(seed uint64) Source { return New(seed) }

func (s *source) IntN(n int) int {
	if n <= 0 {
		return 0
	}

	return s.r.IntN(n)
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}

// Shuffle performs an in-place Fisher-Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func (s *source) Shuffle(a []int) {
	n := len(a)
	if n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := s.r.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Derive mixes this stream's next draw with stream via a SplitMix64-style
// avalanche finalizer, so concurrent multiplex layers get decorrelated
// substreams without sharing a single *rand.Rand.
func (s *source) Derive(stream uint64) Source {
	parent := s.r.Uint64()
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return New(x)
}

// PermN returns a pseudo-random permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func PermN(n int, s Source) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s.Shuffle(p)

	return p
}
