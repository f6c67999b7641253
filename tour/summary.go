// Package tour - itinerary presentation derived from a computed tour.
//
// Summarize is the read-only last stage of the pipeline: it turns a closed
// tour plus the matrix and coordinate lookup into human-facing legs (city
// names, endpoint coordinates, 2-decimal distances) and the bounding box of
// the coordinate set. It never mutates its inputs.
package tour

import (
	"fmt"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/matrix"
)

// RouteLeg is one presentation edge of an itinerary.
type RouteLeg struct {
	Seq       int            // 1-based position in the itinerary
	From, To  string         // city names
	FromCoord geo.Coordinate // origin coordinate
	ToCoord   geo.Coordinate // destination coordinate
	Distance  float64        // leg length, km, rounded to 2 decimals
}

// Summary is the presentation view of a tour: ordered legs, the bounding box
// of all known coordinates (center = arithmetic mean, not tour-weighted),
// and the 2-decimal total. The zero value is the neutral empty summary.
type Summary struct {
	Legs          []RouteLeg
	Bounds        geo.BoundingBox
	TotalDistance float64
}

// Summarize derives the itinerary for a closed tour t over cities/coords,
// reading leg distances from dist.
//
// Contract:
//   - An empty tour or an empty coordinate set yields the neutral Summary
//     and a nil error — presentation degrades gracefully, it does not fail.
//   - Otherwise t must be a valid closed tour over len(cities) indices
//     (ErrDimensionMismatch), dist square of the same order, and every
//     visited city present in coords (wrapped ErrMissingCoordinate).
//
// Complexity: O(n) time beyond the O(n) bounds reduction.
func Summarize(t []int, dist matrix.Matrix, cities []string, coords map[string]geo.Coordinate) (Summary, error) {
	if len(t) == 0 || len(coords) == 0 {
		return Summary{}, nil
	}

	n, err := orderOf(dist)
	if err != nil {
		return Summary{}, err
	}
	if n != len(cities) {
		return Summary{}, ErrDimensionMismatch
	}
	if err = ValidateTour(t, n); err != nil {
		return Summary{}, err
	}

	// Resolve every visited city before building any leg, so a missing
	// coordinate leaves no partial summary observable.
	var (
		points = make([]geo.Coordinate, n)
		i      int
		ok     bool
	)
	for i = 0; i < n; i++ {
		points[i], ok = coords[cities[i]]
		if !ok {
			return Summary{}, fmt.Errorf("summarize: %q: %w", cities[i], ErrMissingCoordinate)
		}
	}

	var (
		legs  = make([]RouteLeg, 0, len(t)-1)
		total float64
		d     float64
		u, v  int
	)
	for i = 0; i < len(t)-1; i++ {
		u, v = t[i], t[i+1]
		d, err = dist.At(u, v)
		if err != nil {
			return Summary{}, ErrDimensionMismatch
		}
		legs = append(legs, RouteLeg{
			Seq:       i + 1,
			From:      cities[u],
			To:        cities[v],
			FromCoord: points[u],
			ToCoord:   points[v],
			Distance:  Round2(d),
		})
		total += d
	}

	return Summary{
		Legs:          legs,
		Bounds:        geo.Bounds(coords),
		TotalDistance: Round2(round1e9(total)),
	}, nil
}
