// Package geo - Coordinate type and haversine great-circle distance.
//
// Design:
//   - Pure functions, no error surface: any pair of in-range coordinates
//     yields a finite, non-negative distance.
//   - The √a argument is clamped to [0,1] so floating-point overshoot near
//     antipodal points cannot produce a math.Asin domain error (NaN).
//   - Deterministic: identical inputs yield bit-identical outputs.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the spherical model.
const EarthRadiusKm = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// Coordinate is a geographic point in degrees.
// Valid ranges: Lat ∈ [-90,90], Lng ∈ [-180,180].
type Coordinate struct {
	Lat float64 // latitude, degrees north
	Lng float64 // longitude, degrees east
}

// Distance returns the haversine great-circle distance between a and b in
// kilometers on a sphere of radius EarthRadiusKm.
//
// Contract:
//   - Symmetric: Distance(a,b) == Distance(b,a).
//   - Non-negative; zero iff a == b.
//   - Total over valid coordinates: no NaN/Inf, even at antipodal points.
//
// Complexity: O(1), no allocations.
func Distance(a, b Coordinate) float64 {
	var (
		lat1 = a.Lat * degToRad
		lat2 = b.Lat * degToRad
		dLat = (b.Lat - a.Lat) * degToRad
		dLng = (b.Lng - a.Lng) * degToRad
	)

	var (
		sinLat = math.Sin(dLat / 2)
		sinLng = math.Sin(dLng / 2)
	)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// Clamp against FP overshoot so Asin stays in its domain.
	if h > 1 {
		h = 1
	}
	if h < 0 {
		h = 0
	}

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}
