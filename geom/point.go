package geom

import "fmt"

// A Point is an absolute position in a 2-d coordinate system.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out, In Scalar](p Point[In]) Point[Out] {
	return Point[Out]{Out(p.X), Out(p.Y)}
}

// Add returns the point shifted by e.
func (p Point[T]) Add(e Extent[T]) Point[T] {
	return Point[T]{p.X + e.X, p.Y + e.Y}
}

// Sub returns the point shifted by the negation of e.
func (p Point[T]) Sub(e Extent[T]) Point[T] {
	return Point[T]{p.X - e.X, p.Y - e.Y}
}

// Diff returns the offset from q to p, i.e. the extent e such that
// q.Add(e) == p.
func (p Point[T]) Diff(q Point[T]) Extent[T] {
	return Extent[T]{p.X - q.X, p.Y - q.Y}
}

// AsExtent reinterprets the point as an offset from the origin.
func (p Point[T]) AsExtent() Extent[T] {
	return Extent[T]{p.X, p.Y}
}

// Scaled returns the point with both coordinates multiplied by factor.
func (p Point[T]) Scaled(factor float64) Point[T] {
	return Point[T]{T(float64(p.X) * factor), T(float64(p.Y) * factor)}
}

// DistanceSquared returns the squared Euclidean distance between p and
// q.
func (p Point[T]) DistanceSquared(q Point[T]) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return dx*dx + dy*dy
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
