// Package pixgeom provides the geometric value types that form the
// coordinate foundation of a pixel-processing pipeline: 1-d intervals
// over integer pixel coordinates (IntervalI) and real coordinates
// (IntervalD), and the 2-d axis-aligned boxes built from them (Box2I,
// Box2D).
//
// It is patterned after image.Rectangle and image.Point, but models a
// pixel as a unit square centered on its integer coordinates: pixel x
// occupies the continuous span [x-0.5, x+0.5]. Conversions between the
// discrete and continuous types take an explicit EdgeHandling policy
// for pixels that only partially overlap a continuous region.
//
// All types are immutable values. Operations return new values; the
// ones that can overflow the int32 coordinate range or that require
// finite inputs also return an error.
package pixgeom

import "deedles.dev/pixgeom/geom"

// Aliases for the geom instantiations used throughout the package.
// The I variants are discrete pixel coordinates, the D variants
// continuous ones.
type (
	Point2I  = geom.Point[int32]
	Point2D  = geom.Point[float64]
	Extent2I = geom.Extent[int32]
	Extent2D = geom.Extent[float64]
)

// EdgeHandling selects how pixels that only partially overlap a
// continuous interval or box are treated when converting it to a
// discrete one.
type EdgeHandling int

const (
	// Expand includes every pixel that overlaps the continuous region
	// at all.
	Expand EdgeHandling = iota

	// Shrink includes only pixels wholly contained by the continuous
	// region.
	Shrink
)

func (e EdgeHandling) String() string {
	switch e {
	case Expand:
		return "Expand"
	case Shrink:
		return "Shrink"
	}
	return "EdgeHandling(invalid)"
}
