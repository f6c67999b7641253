// Package tour - greedy nearest-neighbor tour construction.
//
// NearestNeighbor builds a closed tour by always travelling to the closest
// city not yet visited, then returning to the start.
//
// Design:
//   - Deterministic: on an exact distance tie the lowest index wins — the
//     ascending scan over unvisited indices with a strict "<" guarantees it.
//   - Strict sentinel errors only; no fmt.Errorf in hot paths.
//   - Weights are prefetched into a flat buffer to keep the O(n) inner scan
//     free of interface calls.
//
// Contracts:
//   - dist is a square n×n matrix with finite, non-negative entries.
//   - start ∈ [0..n-1].
//   - The result tour satisfies ValidateTour(tour, n) for every n ≥ 1.
//
// Complexity: O(n²) time (n steps × O(n) scan), O(n²) space for the
// prefetched weights.
package tour

import "github.com/katalvlaran/geotour/matrix"

// NearestNeighbor computes a greedy tour over dist starting (and ending) at
// start. Each chosen edge is recorded as a Step whose Remaining field is the
// number of cities still unvisited at selection time, destination included;
// the closing edge carries Remaining == 0.
//
// Errors: ErrNoCities (n == 0), ErrStartOutOfRange, matrix.ErrNonSquare,
// ErrDimensionMismatch / ErrNegativeDistance on malformed entries.
func NearestNeighbor(dist matrix.Matrix, start int) (Result, error) {
	n, err := orderOf(dist)
	if err != nil {
		return Result{}, err
	}
	if err = validateStart(n, start); err != nil {
		return Result{}, err
	}

	// Degenerate single-city tour: [start start], one zero-length closing
	// step, no scan, no division anywhere.
	if n == 1 {
		return Result{
			Tour:          []int{start, start},
			Steps:         []Step{{From: start, To: start}},
			TotalDistance: 0,
		}, nil
	}

	w, err := prefetchWeights(dist, n)
	if err != nil {
		return Result{}, err
	}

	var (
		visited   = make([]bool, n)
		t         = make([]int, 0, n+1)
		steps     = make([]Step, 0, n)
		total     float64
		current   = start
		unvisited = n - 1
	)
	visited[start] = true
	t = append(t, start)

	var (
		nearest int
		best    float64
		j       int
		row     []float64
	)
	for unvisited > 0 {
		// Scan the current row ascending; strict "<" keeps ties on the
		// lowest index.
		nearest = -1
		row = w[current*n : (current+1)*n]
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if nearest == -1 || row[j] < best {
				nearest = j
				best = row[j]
			}
		}

		steps = append(steps, Step{
			From:      current,
			To:        nearest,
			Distance:  best,
			Remaining: unvisited,
		})
		total += best
		visited[nearest] = true
		t = append(t, nearest)
		current = nearest
		unvisited--
	}

	// Close the loop back to the start.
	closing := w[current*n+start]
	steps = append(steps, Step{From: current, To: start, Distance: closing})
	total += closing
	t = append(t, start)

	return Result{Tour: t, Steps: steps, TotalDistance: Round2(round1e9(total))}, nil
}
