// Package tour_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package tour_test

import (
	"testing"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/matrix"
)

// seedDet is a deterministic seed for RNG-based components.
const seedDet = int64(7)

// squareCities is the canonical 4-city instance: a 1°×1° square near the
// equator, so the perimeter edges are ≈111 km and the diagonals ≈157 km.
var (
	squareCities = []string{"SW", "NW", "NE", "SE"}
	squareCoords = map[string]geo.Coordinate{
		"SW": {Lat: 0, Lng: 0},
		"NW": {Lat: 0, Lng: 1},
		"NE": {Lat: 1, Lng: 1},
		"SE": {Lat: 1, Lng: 0},
	}
)

// mustDense builds a square matrix from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := range rows {
		for j := range rows[i] {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// assertClosedTour fails unless tr is a permutation-plus-closure over n cities.
func assertClosedTour(t *testing.T, tr []int, n int) {
	t.Helper()
	if len(tr) != n+1 {
		t.Fatalf("tour length = %d, want %d", len(tr), n+1)
	}
	if tr[0] != tr[n] {
		t.Fatalf("tour not closed: first %d, last %d", tr[0], tr[n])
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tr[i]
		if v < 0 || v >= n {
			t.Fatalf("tour index %d out of range [0,%d)", v, n)
		}
		if seen[v] {
			t.Fatalf("tour visits %d twice", v)
		}
		seen[v] = true
	}
}
