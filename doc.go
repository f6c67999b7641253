// Package geotour plans near-optimal closed tours over named geographic
// points — give it city names with known coordinates, get back an ordered
// round trip with a step-by-step itinerary.
//
// 🚀 What is geotour?
//
//	A compact, deterministic route-optimization toolkit that brings together:
//		• Geodesic primitives: haversine distances & bounding boxes (geo/)
//		• Matrix storage: bounds-checked dense float64 matrices (matrix/)
//		• Tour construction: greedy nearest-neighbor with a full step log
//		• Tour refinement: a seedable genetic algorithm with elitism
//		• Presentation: itinerary legs with coordinates & rounded distances
//
// ✨ Why choose geotour?
//
//   - Deterministic – seedable RNG, defined tie-breaks, reproducible tests
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Value-passing design – no long-lived optimizer state to go stale
//
// Everything is organized under three subpackages:
//
//	geo/    — Coordinate, haversine Distance, BoundingBox & Bounds
//	matrix/ — Matrix interface + Dense row-major implementation
//	tour/   — distance-matrix build, solvers, summaries & sentinels
//
// Quick sketch:
//
//	cities + coordinates ──▶ BuildDistanceMatrix ──▶ NearestNeighbor / Genetic
//	                                                       │
//	                                 Summarize ◀── Result ─┘
//
// Dive into examples/ for a complete multi-city round-trip program.
//
//	go get github.com/katalvlaran/geotour
package geotour
