// Package tour - distance-matrix construction over named cities.
//
// BuildDistanceMatrix is the single entry point that turns (cities, coords)
// into the n×n table every solver consumes. It is deterministic (identical
// inputs yield a bit-identical matrix), has no side effects, and fully
// replaces rather than patches: callers rebuild whenever the city set or
// any coordinate changes.
package tour

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/matrix"
)

// NormalizeCities trims whitespace, drops empties and deduplicates the input
// while preserving the order of first appearance. The returned slice defines
// the index space used by every downstream structure.
//
// Complexity: O(n) time, O(n) space.
func NormalizeCities(cities []string) []string {
	var (
		out  = make([]string, 0, len(cities))
		seen = make(map[string]struct{}, len(cities))
		name string
		ok   bool
	)
	for _, name = range cities {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok = seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// BuildDistanceMatrix computes the haversine distance table over cities,
// indexed by each city's position in the slice.
//
// Contract:
//   - Every city must have an entry in coords; a missing one fails with an
//     error wrapping ErrMissingCoordinate and naming the city. A missing
//     coordinate is never silently treated as distance 0.
//   - cities must be non-empty (ErrNoCities otherwise).
//   - Result: m[i][j] = geo.Distance(coords[cities[i]], coords[cities[j]])
//     for i≠j; the diagonal is exactly 0.
//   - On failure no partially built matrix is observable to the caller.
//
// Complexity: O(n²) time and space.
func BuildDistanceMatrix(cities []string, coords map[string]geo.Coordinate) (*matrix.Dense, error) {
	n := len(cities)
	if n == 0 {
		return nil, ErrNoCities
	}

	// Resolve all coordinates up front so a missing city fails before any
	// matrix is allocated.
	var (
		points = make([]geo.Coordinate, n)
		i      int
		ok     bool
	)
	for i = 0; i < n; i++ {
		points[i], ok = coords[cities[i]]
		if !ok {
			return nil, fmt.Errorf("build distance matrix: %q: %w", cities[i], ErrMissingCoordinate)
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays at the zero NewDense wrote
			}
			// Dense.Set cannot fail here: indices are in [0,n) by loop bounds.
			_ = m.Set(i, j, geo.Distance(points[i], points[j]))
		}
	}

	return m, nil
}
