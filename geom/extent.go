package geom

import "fmt"

// An Extent is a 2-d offset or size.
type Extent[T Scalar] struct {
	X, Y T
}

// Ext is shorthand for Extent[T]{x, y}.
func Ext[T Scalar](x, y T) Extent[T] {
	return Extent[T]{x, y}
}

// EConv converts an Extent[In] to an Extent[Out] with possible loss of
// precision.
func EConv[Out, In Scalar](e Extent[In]) Extent[Out] {
	return Extent[Out]{Out(e.X), Out(e.Y)}
}

// Add returns the component-wise sum of e and o.
func (e Extent[T]) Add(o Extent[T]) Extent[T] {
	return Extent[T]{e.X + o.X, e.Y + o.Y}
}

// Sub returns the component-wise difference of e and o.
func (e Extent[T]) Sub(o Extent[T]) Extent[T] {
	return Extent[T]{e.X - o.X, e.Y - o.Y}
}

// Neg returns the extent with both components negated.
func (e Extent[T]) Neg() Extent[T] {
	return Extent[T]{-e.X, -e.Y}
}

// Scaled returns the extent with both components multiplied by factor.
func (e Extent[T]) Scaled(factor float64) Extent[T] {
	return Extent[T]{T(float64(e.X) * factor), T(float64(e.Y) * factor)}
}

// AsPoint reinterprets the extent as a position relative to the
// origin.
func (e Extent[T]) AsPoint() Point[T] {
	return Point[T]{e.X, e.Y}
}

func (e Extent[T]) String() string {
	return fmt.Sprintf("(%v, %v)", e.X, e.Y)
}
