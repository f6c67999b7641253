// Package tour computes near-optimal closed tours over a set of named cities.
//
// It includes two mutually substitutable solvers over a distance matrix:
//
//   - NearestNeighbor — greedy construction from a start index.
//
//   - Complexity: O(n²)
//
//   - Deterministic: exact distance ties break toward the lowest index.
//
//   - Genetic — population-based refinement with ordered crossover.
//
//   - Complexity: O(generations·population·n)
//
//   - Heuristic: no optimality guarantee; may lose to NearestNeighbor.
//
// The pipeline is explicit value-passing — no shared optimizer state:
//
//	m, err := tour.BuildDistanceMatrix(cities, coords)
//	res, err := tour.NearestNeighbor(m, 0)          // or tour.Genetic(m, opts)
//	sum, err := tour.Summarize(res.Tour, m, cities, coords)
//
// Every tour is a closed cycle: for n cities, len(Tour) == n+1 and the first
// and last entries are equal; the interior is a permutation of {0..n-1}.
//
// All failures are sentinel errors (ErrNoCities, ErrStartOutOfRange,
// ErrMissingCoordinate, …) matched via errors.Is; no function panics on
// user input, and no partially built matrix or tour escapes on failure.
package tour
