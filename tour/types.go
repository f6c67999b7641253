// Package tour - sentinels, result types and solver options.
//
// Conventions (shared with matrix/):
//   - Sentinel errors only; wrap with fmt.Errorf("ctx: %w", ErrX) where
//     context (e.g. the city name) is essential. Callers match via errors.Is.
//   - Results are immutable values; a failed call returns the zero Result
//     and never a partially built one.
package tour

import "errors"

var (
	// ErrNoCities is returned when there are no cities to route
	// (empty city list, nil or empty distance matrix).
	ErrNoCities = errors.New("tour: no cities to route")

	// ErrStartOutOfRange is returned when the start index is outside [0,n).
	ErrStartOutOfRange = errors.New("tour: start index out of range")

	// ErrMissingCoordinate is returned by BuildDistanceMatrix when the
	// coordinate lookup has no entry for some city. The returned error wraps
	// this sentinel together with the offending city name.
	ErrMissingCoordinate = errors.New("tour: missing coordinate for city")

	// ErrDegenerateInput guards internal sampling helpers that require at
	// least two distinct indices (crossover cut points, swap mutation).
	ErrDegenerateInput = errors.New("tour: fewer than two cities")

	// ErrDimensionMismatch signals a malformed shape: a non-square matrix,
	// a tour of the wrong length, or indices outside the matrix order.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")

	// ErrNegativeDistance signals a negative matrix entry; distances are
	// lengths and must be non-negative.
	ErrNegativeDistance = errors.New("tour: negative distance")

	// ErrBadOptions signals an invalid GeneticOptions combination
	// (non-positive population or generations, mutation rate outside [0,1]).
	ErrBadOptions = errors.New("tour: invalid genetic options")
)

// Step is one edge of a computed tour: the matrix indices of its endpoints
// and the edge distance in kilometers. Remaining is the number of cities
// still unvisited when the greedy solver chose this edge; the genetic solver
// leaves it at zero.
type Step struct {
	From      int     // index of the edge origin
	To        int     // index of the edge destination
	Distance  float64 // edge length, km (unrounded)
	Remaining int     // unvisited count at selection time (greedy only)
}

// Result is the outcome of one solver invocation. It is constructed once,
// never mutated afterwards, and superseded (not merged) by the next call.
type Result struct {
	// Tour is the sequence of city indices, len n+1, Tour[0]==Tour[n].
	Tour []int

	// Steps holds one entry per tour edge, in tour order, closing edge included.
	Steps []Step

	// TotalDistance is the cycle length in km, rounded to 2 decimals
	// for presentation. Summing Steps distances reproduces it within
	// that rounding tolerance.
	TotalDistance float64
}

// Genetic solver defaults; used whenever the corresponding option is zero.
const (
	DefaultPopulationSize = 100
	DefaultGenerations    = 500
	DefaultMutationRate   = 0.01
)

// GeneticOptions configures the genetic solver.
//
// Fields:
//   - PopulationSize — individuals per generation (default 100).
//   - Generations    — fixed generation count; no early stopping (default 500).
//   - MutationRate   — per-child probability of one swap mutation (default 0.01).
//   - Seed           — RNG seed; 0 selects a fixed default stream so that
//     unseeded runs are still reproducible.
//
// Example:
//
//	res, err := tour.Genetic(m, tour.GeneticOptions{Seed: 42})
type GeneticOptions struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	Seed           int64
}

// DefaultGeneticOptions returns the canonical solver configuration.
// Complexity: O(1).
func DefaultGeneticOptions() GeneticOptions {
	return GeneticOptions{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
	}
}

// normalize fills zero-valued knobs with defaults and validates ranges.
// A negative value is never silently corrected: it is a caller bug surfaced
// as ErrBadOptions.
//
// Complexity: O(1).
func (o GeneticOptions) normalize() (GeneticOptions, error) {
	if o.PopulationSize == 0 {
		o.PopulationSize = DefaultPopulationSize
	}
	if o.Generations == 0 {
		o.Generations = DefaultGenerations
	}
	if o.MutationRate == 0 {
		o.MutationRate = DefaultMutationRate
	}
	if o.PopulationSize < 0 || o.Generations < 0 {
		return GeneticOptions{}, ErrBadOptions
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return GeneticOptions{}, ErrBadOptions
	}

	return o, nil
}
