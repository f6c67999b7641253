// Package tour - RNG utilities for the genetic solver.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Genetic call builds its own
//     stream from its seed; nothing is shared between concurrent solves.
package tour

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// Every permutation is reachable with nonzero probability.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}

// twoDistinct draws two distinct indices from [0..n-1), returned in ascending
// order. Requires n ≥ 2 (ErrDegenerateInput otherwise); the rejection-free
// draw keeps the call O(1).
//
// Complexity: O(1).
func twoDistinct(n int, rng *rand.Rand) (int, int, error) {
	if n < 2 {
		return 0, 0, ErrDegenerateInput
	}

	var (
		a = rng.Intn(n)
		b = rng.Intn(n - 1)
	)
	if b >= a {
		b++
	}
	if a < b {
		return a, b, nil
	}

	return b, a, nil
}
