// Package geo - bounding boxes over coordinate sets.
package geo

// BoundingBox is the minimal axis-aligned lat/lng rectangle containing a
// coordinate set, plus the arithmetic-mean center of the set.
// The zero value represents the bounds of an empty set.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	CenterLat      float64
	CenterLng      float64
}

// Bounds computes the bounding box of coords. The center is the arithmetic
// mean over all entries, not weighted by any tour order. An empty map yields
// the zero BoundingBox — callers treat that as a neutral result, not an error.
//
// Map iteration order does not affect the outcome: min/max/mean are
// order-independent reductions.
//
// Complexity: O(n) time, O(1) space.
func Bounds(coords map[string]Coordinate) BoundingBox {
	if len(coords) == 0 {
		return BoundingBox{}
	}

	var (
		first  = true
		box    BoundingBox
		sumLat float64
		sumLng float64
		c      Coordinate
	)
	for _, c = range coords {
		if first {
			box.MinLat, box.MaxLat = c.Lat, c.Lat
			box.MinLng, box.MaxLng = c.Lng, c.Lng
			first = false
		} else {
			if c.Lat < box.MinLat {
				box.MinLat = c.Lat
			}
			if c.Lat > box.MaxLat {
				box.MaxLat = c.Lat
			}
			if c.Lng < box.MinLng {
				box.MinLng = c.Lng
			}
			if c.Lng > box.MaxLng {
				box.MaxLng = c.Lng
			}
		}
		sumLat += c.Lat
		sumLng += c.Lng
	}

	n := float64(len(coords))
	box.CenterLat = sumLat / n
	box.CenterLng = sumLng / n

	return box
}
