// Package tour_test validates the greedy nearest-neighbor solver.
package tour_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/geotour/tour"
)

func TestNearestNeighbor_EmptyMatrix(t *testing.T) {
	_, err := tour.NearestNeighbor(nil, 0)
	if !errors.Is(err, tour.ErrNoCities) {
		t.Fatalf("want ErrNoCities, got %v", err)
	}
}

func TestNearestNeighbor_StartOutOfRange(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	for _, start := range []int{-1, 2, 99} {
		_, err := tour.NearestNeighbor(m, start)
		if !errors.Is(err, tour.ErrStartOutOfRange) {
			t.Fatalf("start %d: want ErrStartOutOfRange, got %v", start, err)
		}
	}
}

func TestNearestNeighbor_SingleCityDegenerateTour(t *testing.T) {
	m := mustDense(t, [][]float64{{0}})
	res, err := tour.NearestNeighbor(m, 0)
	if err != nil {
		t.Fatalf("NearestNeighbor: %v", err)
	}
	if len(res.Tour) != 2 || res.Tour[0] != 0 || res.Tour[1] != 0 {
		t.Fatalf("tour = %v, want [0 0]", res.Tour)
	}
	if res.TotalDistance != 0 {
		t.Fatalf("total = %v, want 0", res.TotalDistance)
	}
	if len(res.Steps) != 1 || res.Steps[0].Distance != 0 {
		t.Fatalf("steps = %+v, want one zero-length closing step", res.Steps)
	}
}

func TestNearestNeighbor_SquarePerimeter(t *testing.T) {
	// 1°×1° square: the greedy tour from SW must walk the perimeter, not
	// cross a diagonal, and its length is ≈ 4 × one degree (~444.7 km).
	m, err := tour.BuildDistanceMatrix(squareCities, squareCoords)
	if err != nil {
		t.Fatalf("BuildDistanceMatrix: %v", err)
	}
	res, err := tour.NearestNeighbor(m, 0)
	if err != nil {
		t.Fatalf("NearestNeighbor: %v", err)
	}
	assertClosedTour(t, res.Tour, 4)

	want := []int{0, 1, 2, 3, 0}
	for i, v := range want {
		if res.Tour[i] != v {
			t.Fatalf("tour = %v, want %v", res.Tour, want)
		}
	}
	if math.Abs(res.TotalDistance-4*111.19) > 1.0 {
		t.Fatalf("total = %v, want ≈ %v", res.TotalDistance, 4*111.19)
	}
}

func TestNearestNeighbor_TieBreaksToLowestIndex(t *testing.T) {
	// From city 0, cities 1 and 2 are equally near; 1 must win.
	m := mustDense(t, [][]float64{
		{0, 5, 5, 9},
		{5, 0, 2, 9},
		{5, 2, 0, 1},
		{9, 9, 1, 0},
	})
	res, err := tour.NearestNeighbor(m, 0)
	if err != nil {
		t.Fatalf("NearestNeighbor: %v", err)
	}
	want := []int{0, 1, 2, 3, 0}
	for i, v := range want {
		if res.Tour[i] != v {
			t.Fatalf("tour = %v, want %v (lowest-index tie-break)", res.Tour, want)
		}
	}
}

func TestNearestNeighbor_StepLog(t *testing.T) {
	m, err := tour.BuildDistanceMatrix(squareCities, squareCoords)
	if err != nil {
		t.Fatalf("BuildDistanceMatrix: %v", err)
	}
	res, err := tour.NearestNeighbor(m, 0)
	if err != nil {
		t.Fatalf("NearestNeighbor: %v", err)
	}

	// One step per edge, closing edge included.
	if len(res.Steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(res.Steps))
	}
	// Remaining counts down from n-1 and ends at 0 on the closing edge.
	wantRemaining := []int{3, 2, 1, 0}
	for i, s := range res.Steps {
		if s.Remaining != wantRemaining[i] {
			t.Fatalf("step %d remaining = %d, want %d", i, s.Remaining, wantRemaining[i])
		}
		if s.From != res.Tour[i] || s.To != res.Tour[i+1] {
			t.Fatalf("step %d endpoints (%d,%d) disagree with tour %v", i, s.From, s.To, res.Tour)
		}
	}

	// Round-trip: summing step distances reproduces the reported total
	// within presentation rounding.
	var sum float64
	for _, s := range res.Steps {
		sum += s.Distance
	}
	if math.Abs(sum-res.TotalDistance) > 0.005+1e-9 {
		t.Fatalf("steps sum %v vs total %v", sum, res.TotalDistance)
	}
}

func TestNearestNeighbor_ValidTourForAllStartsAndSizes(t *testing.T) {
	for n := 1; n <= 8; n++ {
		// Symmetric line metric: d(i,j) = 10·|i-j|.
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				d := float64(i - j)
				if d < 0 {
					d = -d
				}
				rows[i][j] = d * 10
			}
		}
		m := mustDense(t, rows)
		for start := 0; start < n; start++ {
			res, err := tour.NearestNeighbor(m, start)
			if err != nil {
				t.Fatalf("n=%d start=%d: %v", n, start, err)
			}
			assertClosedTour(t, res.Tour, n)
			if res.Tour[0] != start {
				t.Fatalf("n=%d: tour starts at %d, want %d", n, res.Tour[0], start)
			}
		}
	}
}
