// Package matrix offers the dense numeric storage the tour solvers run on.
//
// The matrix package provides:
//
//   - The Matrix interface: a bounds-checked, mutable 2-D array of float64
//     with O(1) element access and deep Clone.
//   - Dense: a row-major flat-slice implementation, cache-friendly and
//     allocation-predictable — the concrete type behind every distance table.
//
// Dense matrices are best for the complete distance tables tour optimization
// needs, where O(n²) memory is inherent to the problem.
//
// All misuse is reported through sentinel errors (errors.Is-checkable);
// no method panics on user input.
package matrix
