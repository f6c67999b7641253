// Package tour_test validates itinerary summaries.
package tour_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/tour"
)

func TestSummarize_NeutralOnEmptyInputs(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})

	s, err := tour.Summarize(nil, m, []string{"A", "B"}, map[string]geo.Coordinate{"A": {}})
	if err != nil || len(s.Legs) != 0 {
		t.Fatalf("empty tour: want neutral summary, got %+v err %v", s, err)
	}

	s, err = tour.Summarize([]int{0, 1, 0}, m, []string{"A", "B"}, nil)
	if err != nil || len(s.Legs) != 0 {
		t.Fatalf("empty coords: want neutral summary, got %+v err %v", s, err)
	}
}

func TestSummarize_LegsCarryNamesCoordinatesAndRoundedDistances(t *testing.T) {
	m, err := tour.BuildDistanceMatrix(squareCities, squareCoords)
	if err != nil {
		t.Fatalf("BuildDistanceMatrix: %v", err)
	}
	res, err := tour.NearestNeighbor(m, 0)
	if err != nil {
		t.Fatalf("NearestNeighbor: %v", err)
	}

	s, err := tour.Summarize(res.Tour, m, squareCities, squareCoords)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(s.Legs) != len(res.Tour)-1 {
		t.Fatalf("legs = %d, want %d", len(s.Legs), len(res.Tour)-1)
	}

	for i, leg := range s.Legs {
		if leg.Seq != i+1 {
			t.Fatalf("leg %d Seq = %d, want %d", i, leg.Seq, i+1)
		}
		wantFrom := squareCities[res.Tour[i]]
		wantTo := squareCities[res.Tour[i+1]]
		if leg.From != wantFrom || leg.To != wantTo {
			t.Fatalf("leg %d = %s→%s, want %s→%s", i, leg.From, leg.To, wantFrom, wantTo)
		}
		if leg.FromCoord != squareCoords[wantFrom] || leg.ToCoord != squareCoords[wantTo] {
			t.Fatalf("leg %d coordinates disagree with lookup", i)
		}
		// Distances carry presentation rounding.
		if leg.Distance != tour.Round2(leg.Distance) {
			t.Fatalf("leg %d distance %v not rounded", i, leg.Distance)
		}
	}

	// Total agrees with the solver's reported total.
	if s.TotalDistance != res.TotalDistance {
		t.Fatalf("summary total %v vs solver total %v", s.TotalDistance, res.TotalDistance)
	}

	// Bounds cover the square with the arithmetic-mean center.
	b := s.Bounds
	if b.MinLat != 0 || b.MaxLat != 1 || b.MinLng != 0 || b.MaxLng != 1 {
		t.Fatalf("bounds = %+v, want unit square", b)
	}
	if math.Abs(b.CenterLat-0.5) > 1e-12 || math.Abs(b.CenterLng-0.5) > 1e-12 {
		t.Fatalf("center = (%v,%v), want (0.5,0.5)", b.CenterLat, b.CenterLng)
	}
}

func TestSummarize_MissingCoordinate(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	coords := map[string]geo.Coordinate{"A": {Lat: 1, Lng: 1}}
	_, err := tour.Summarize([]int{0, 1, 0}, m, []string{"A", "B"}, coords)
	if !errors.Is(err, tour.ErrMissingCoordinate) {
		t.Fatalf("want ErrMissingCoordinate, got %v", err)
	}
}

func TestSummarize_ShapeMismatch(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	coords := map[string]geo.Coordinate{"A": {}, "B": {}, "C": {}}

	// Three cities against a 2×2 matrix.
	_, err := tour.Summarize([]int{0, 1, 0}, m, []string{"A", "B", "C"}, coords)
	if !errors.Is(err, tour.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}

	// Tour that is not a closed permutation.
	_, err = tour.Summarize([]int{0, 0, 0}, m, []string{"A", "B"}, coords)
	if !errors.Is(err, tour.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}
