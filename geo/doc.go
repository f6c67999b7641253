// Package geo provides the geodesic primitives the tour solvers build on:
// a Coordinate type, great-circle (haversine) distances in kilometers, and
// axis-aligned bounding boxes over coordinate sets.
//
// 🚀 What does geo cover?
//
//   - Distance — haversine great-circle distance on a sphere of radius
//     6371 km. Symmetric, non-negative, zero for identical points, and
//     total: it never fails for coordinates within the valid ranges
//     (latitude [-90,90], longitude [-180,180]), including antipodal pairs.
//   - Bounds — the minimal lat/lng rectangle containing a coordinate set,
//     with the arithmetic-mean center (not tour-weighted).
//
// ⚙️ Usage:
//
//	d := geo.Distance(
//	  geo.Coordinate{Lat: 19.0760, Lng: 72.8777}, // Mumbai
//	  geo.Coordinate{Lat: 28.7041, Lng: 77.1025}, // Delhi
//	)
//	// d ≈ 1163 km
//
// Accuracy:
//
//	The spherical model is within ~0.5% of true terrestrial distances,
//	which is sufficient for tour optimization; no ellipsoidal correction
//	is applied.
//
// All functions are pure and allocation-free; the package has no error
// surface of its own.
package geo
