// Package geom provides generic 2-d coordinate value types.
//
// It is patterned after image.Point, but distinguishes absolute
// positions (Point) from offsets and sizes (Extent), since the two
// support different arithmetic: subtracting two points yields an
// extent, while adding an extent to a point yields another point.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | Integer
}

// Integer is a constraint for any integer type.
type Integer = constraints.Integer
