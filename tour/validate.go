// Package tour - validation utilities shared by both solvers.
//
// This file contains small, tight helpers that:
//  1. Validate distance matrices (presence, squareness, order).
//  2. Validate start indices against a known order.
//  3. Validate tours and permutations (Hamiltonian-cycle invariants).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n) worst-case per helper; no hidden allocations beyond marker slices.
package tour

import "github.com/katalvlaran/geotour/matrix"

// orderOf verifies that dist is a usable distance table and returns its
// order n.
//
// Contract:
//   - nil or zero-row matrices mean "no cities" (ErrNoCities) — callers are
//     guaranteed no further matrix access happens in that case.
//   - non-square matrices fail with matrix.ErrNonSquare.
//
// Complexity: O(1).
func orderOf(dist matrix.Matrix) (int, error) {
	if dist == nil || dist.Rows() == 0 {
		return 0, ErrNoCities
	}
	if dist.Rows() != dist.Cols() {
		return 0, matrix.ErrNonSquare
	}

	return dist.Rows(), nil
}

// validateStart verifies that start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n],
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}
