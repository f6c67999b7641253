// Package tour - cost utilities shared by both solvers.
//
// Design:
//   - A linearized weight buffer removes interface indirection from hot loops.
//   - Strict sentinels on any invalid input; defensive NaN/negative checks
//     even when the matrix was built by BuildDistanceMatrix.
//   - Stable summation: internal sums rounded to 1e-9 to avoid cross-platform
//     FP noise; presentation values rounded to 2 decimals.
package tour

import (
	"math"

	"github.com/katalvlaran/geotour/matrix"
)

// roundScale controls internal cost stabilization precision (1e-9).
const roundScale = 1e9

// presentScale controls presentation rounding (2 decimal places).
const presentScale = 1e2

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Round2 returns x rounded to 2 decimal places — the presentation precision
// used for total distances and itinerary legs.
// Complexity: O(1).
func Round2(x float64) float64 {
	return math.Round(x*presentScale) / presentScale
}

// prefetchWeights copies an n×n distance matrix into a flat row-major buffer
// w[i*n+j] so solver inner loops read plain slice elements. It also enforces
// sentinel semantics per entry:
//   - NaN or ±Inf → ErrDimensionMismatch (ill-posed input),
//   - negative    → ErrNegativeDistance.
//
// Complexity: O(n²) time and space.
func prefetchWeights(dist matrix.Matrix, n int) ([]float64, error) {
	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrDimensionMismatch
			}
			if x < 0 {
				return nil, ErrNegativeDistance
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}

// TourCost sums the edge distances of a closed tour against dist, stabilized
// to 1e-9. The tour must satisfy ValidateTour for the matrix order.
//
// Complexity: O(n) time, O(1) extra space.
func TourCost(dist matrix.Matrix, t []int) (float64, error) {
	n, err := orderOf(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidateTour(t, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
		x   float64
	)
	for i = 0; i < len(t)-1; i++ {
		x, err = dist.At(t[i], t[i+1])
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, ErrDimensionMismatch
		}
		if x < 0 {
			return 0, ErrNegativeDistance
		}
		sum += x
	}

	return round1e9(sum), nil
}

// cycleLength sums the closed-cycle length of an open permutation against the
// prefetched weight buffer: consecutive edges plus the wrap-around edge from
// the last index back to the first.
//
// Complexity: O(n) time, O(1) space.
func cycleLength(w []float64, n int, perm []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(perm)-1; i++ {
		sum += w[perm[i]*n+perm[i+1]]
	}
	sum += w[perm[len(perm)-1]*n+perm[0]]

	return sum
}

// stepsFromTour materializes one Step per edge of a closed tour using the
// prefetched weight buffer, and returns the stabilized total. Remaining
// counts stay zero — they are the greedy solver's narrative, not the tour's.
//
// Complexity: O(n) time and space.
func stepsFromTour(w []float64, n int, t []int) ([]Step, float64) {
	var (
		steps = make([]Step, 0, len(t)-1)
		total float64
		i     int
		d     float64
	)
	for i = 0; i < len(t)-1; i++ {
		d = w[t[i]*n+t[i+1]]
		steps = append(steps, Step{From: t[i], To: t[i+1], Distance: d})
		total += d
	}

	return steps, round1e9(total)
}
