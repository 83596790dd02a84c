package pixgeom

import (
	"fmt"
	"image"
)

// A Box2I is an axis-aligned, inclusive 2-d region of pixels, the
// product of one IntervalI per axis. A box is empty iff either axis is
// empty; the zero value is the canonical empty box and every
// constructor normalizes empty results to it, so boxes may be compared
// with == and used as map keys.
//
// Most operations decompose into independent per-axis interval
// operations and recompose the result.
type Box2I struct {
	x, y IntervalI
}

// NewBox2I composes a box from its two axis intervals. If either is
// empty the box is empty.
func NewBox2I(x, y IntervalI) Box2I {
	if x.IsEmpty() || y.IsEmpty() {
		return Box2I{}
	}
	return Box2I{x: x, y: y}
}

func intervalIAxisFromMinMax(lo, hi int64, invert bool) (IntervalI, error) {
	if hi < lo {
		if !invert {
			return IntervalI{}, nil
		}
		lo, hi = hi, lo
	}
	return intervalIFromMinMax64(lo, hi)
}

// Box2IFromMinMax returns the box with the given inclusive corner
// points. On an axis where max < min, the bounds are swapped if invert
// is true; otherwise the whole box is empty.
func Box2IFromMinMax(min, max Point2I, invert bool) (Box2I, error) {
	x, err := intervalIAxisFromMinMax(int64(min.X), int64(max.X), invert)
	if err != nil {
		return Box2I{}, err
	}
	y, err := intervalIAxisFromMinMax(int64(min.Y), int64(max.Y), invert)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

func intervalIAxisFromCorner(min, dim int64, invert bool) (IntervalI, error) {
	if dim == 0 {
		return IntervalI{}, nil
	}
	if dim < 0 {
		if !invert {
			return IntervalI{}, nil
		}
		min += dim + 1
		dim = -dim
	}
	return intervalIFromMinMax64(min, min+dim-1)
}

// Box2IFromCorner returns the box with the given minimum corner and
// dimensions. A zero dimension on either axis makes the whole box
// empty. On an axis with a negative dimension, the corner is moved so
// the dimension can be made positive if invert is true; otherwise the
// whole box is empty.
func Box2IFromCorner(corner Point2I, dims Extent2I, invert bool) (Box2I, error) {
	x, err := intervalIAxisFromCorner(int64(corner.X), int64(dims.X), invert)
	if err != nil {
		return Box2I{}, err
	}
	y, err := intervalIAxisFromCorner(int64(corner.Y), int64(dims.Y), invert)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// Box2ICentered returns a box of the given size centered as closely as
// possible on center, which must be finite on both axes. The center
// compensation follows the same pixel-center convention as
// IntervalIFromCenterSize.
func Box2ICentered(center Point2D, size Extent2I) (Box2I, error) {
	if !isFinite(center.X) || !isFinite(center.Y) {
		return Box2I{}, fmt.Errorf("%w: cannot make Box2I with non-finite center", ErrInvalidParameter)
	}
	x, err := IntervalIFromCenterSize(center.X, size.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := IntervalIFromCenterSize(center.Y, size.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// Box2IFromD converts a continuous box to a discrete one, applying the
// edge handling policy independently per axis.
func Box2IFromD(other Box2D, edge EdgeHandling) (Box2I, error) {
	x, err := IntervalIFromD(other.x, edge)
	if err != nil {
		return Box2I{}, err
	}
	y, err := IntervalIFromD(other.y, edge)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// Box2IFromImageRect converts a half-open image.Rectangle to an
// inclusive Box2I.
func Box2IFromImageRect(r image.Rectangle) (Box2I, error) {
	r = r.Canon()
	if r.Empty() {
		return Box2I{}, nil
	}
	x, err := intervalIFromMinMax64(int64(r.Min.X), int64(r.Max.X)-1)
	if err != nil {
		return Box2I{}, err
	}
	y, err := intervalIFromMinMax64(int64(r.Min.Y), int64(r.Max.Y)-1)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// X returns the box's x-axis interval.
func (b Box2I) X() IntervalI { return b.x }

// Y returns the box's y-axis interval.
func (b Box2I) Y() IntervalI { return b.y }

// IsEmpty reports whether the box contains no pixels.
func (b Box2I) IsEmpty() bool { return b.x.IsEmpty() || b.y.IsEmpty() }

// Min returns the box's minimum corner (inclusive).
func (b Box2I) Min() Point2I { return Point2I{X: b.x.Min(), Y: b.y.Min()} }

// Max returns the box's maximum corner (inclusive).
func (b Box2I) Max() Point2I { return Point2I{X: b.x.Max(), Y: b.y.Max()} }

// Begin returns the box's first pixel coordinate on each axis, equal
// to Min.
func (b Box2I) Begin() Point2I { return Point2I{X: b.x.Begin(), Y: b.y.Begin()} }

// End returns the coordinate one past the box's maximum on each axis.
func (b Box2I) End() Point2I { return Point2I{X: b.x.End(), Y: b.y.End()} }

// Dimensions returns the box's size on each axis.
func (b Box2I) Dimensions() Extent2I { return Extent2I{X: b.x.Size(), Y: b.y.Size()} }

// Width returns the box's x-axis size.
func (b Box2I) Width() int32 { return b.x.Size() }

// Height returns the box's y-axis size.
func (b Box2I) Height() int32 { return b.y.Size() }

// Area returns the number of pixels in the box.
func (b Box2I) Area() int64 {
	return int64(b.x.Size()) * int64(b.y.Size())
}

// Center returns the box's center in continuous coordinates, or NaN
// coordinates for an empty box.
func (b Box2I) Center() Point2D {
	return Box2DFromI(b).Center()
}

// Slices returns the row-major, half-open index ranges for extracting
// the box's region from a [height][width] pixel array.
func (b Box2I) Slices() (yBegin, yEnd, xBegin, xEnd int) {
	return int(b.y.Begin()), int(b.y.End()), int(b.x.Begin()), int(b.x.End())
}

// ImageRect returns the box as a half-open image.Rectangle, suitable
// for indexing the standard image types.
func (b Box2I) ImageRect() image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(int(b.x.Begin()), int(b.y.Begin()), int(b.x.End()), int(b.y.End()))
}

// Contains reports whether the box contains the point. An empty box
// contains nothing.
func (b Box2I) Contains(point Point2I) bool {
	return b.x.Contains(point.X) && b.y.Contains(point.Y)
}

// ContainsBox reports whether every pixel in other is also in b. An
// empty other is contained by every box, including empty ones.
func (b Box2I) ContainsBox(other Box2I) bool {
	return b.x.ContainsInterval(other.x) && b.y.ContainsInterval(other.y)
}

// Overlaps reports whether any pixel is in both b and other. Any
// overlap test involving an empty box is false.
func (b Box2I) Overlaps(other Box2I) bool {
	return !b.IsDisjointFrom(other)
}

// IsDisjointFrom reports whether no pixel is in both b and other.
func (b Box2I) IsDisjointFrom(other Box2I) bool {
	return b.x.IsDisjointFrom(other.x) || b.y.IsDisjointFrom(other.y)
}

// DilatedBy grows the box by the given buffer on each axis. Negative
// components erode instead; a box eroded to a nonpositive size on
// either axis is empty. Empty boxes stay empty.
func (b Box2I) DilatedBy(buffer Extent2I) (Box2I, error) {
	x, err := b.x.DilatedBy(buffer.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.DilatedBy(buffer.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ErodedBy shrinks the box by the given buffer on each axis; it is
// equivalent to DilatedBy of the negated buffer.
func (b Box2I) ErodedBy(buffer Extent2I) (Box2I, error) {
	x, err := b.x.ErodedBy(buffer.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ErodedBy(buffer.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ShiftedBy translates the box by the given offset. Empty boxes stay
// empty.
func (b Box2I) ShiftedBy(offset Extent2I) (Box2I, error) {
	x, err := b.x.ShiftedBy(offset.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ShiftedBy(offset.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ReflectedAboutX mirrors the box about the vertical line at the given
// x coordinate.
func (b Box2I) ReflectedAboutX(x int32) (Box2I, error) {
	rx, err := b.x.ReflectedAbout(x)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(rx, b.y), nil
}

// ReflectedAboutY mirrors the box about the horizontal line at the
// given y coordinate.
func (b Box2I) ReflectedAboutY(y int32) (Box2I, error) {
	ry, err := b.y.ReflectedAbout(y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(b.x, ry), nil
}

// ExpandedTo grows the box so that it contains the point. Expanding an
// empty box yields the single-pixel box at the point.
func (b Box2I) ExpandedTo(point Point2I) (Box2I, error) {
	x, err := b.x.ExpandedTo(point.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ExpandedTo(point.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ExpandedToBox grows the box so that it contains other. Expanding an
// empty box by another is equivalent to assignment; expanding by an
// empty box returns b unchanged.
func (b Box2I) ExpandedToBox(other Box2I) (Box2I, error) {
	x, err := b.x.ExpandedToInterval(other.x)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ExpandedToInterval(other.y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ClippedTo returns the intersection of b and other. If they do not
// overlap, the result is empty.
func (b Box2I) ClippedTo(other Box2I) Box2I {
	return NewBox2I(b.x.ClippedTo(other.x), b.y.ClippedTo(other.y))
}

// FlipLR mirrors the box horizontally within a parent region of the
// given width, as when flipping an image left-to-right. Empty boxes
// stay empty.
func (b Box2I) FlipLR(xExtent int32) Box2I {
	if b.IsEmpty() {
		return Box2I{}
	}
	return Box2I{
		x: IntervalI{min: xExtent - (b.x.min + b.x.size), size: b.x.size},
		y: b.y,
	}
}

// FlipTB mirrors the box vertically within a parent region of the
// given height, as when flipping an image top-to-bottom. Empty boxes
// stay empty.
func (b Box2I) FlipTB(yExtent int32) Box2I {
	if b.IsEmpty() {
		return Box2I{}
	}
	return Box2I{
		x: b.x,
		y: IntervalI{min: yExtent - (b.y.min + b.y.size), size: b.y.size},
	}
}

// Corners returns the box's corner points, counterclockwise from the
// minimum corner.
func (b Box2I) Corners() [4]Point2I {
	return [4]Point2I{
		b.Min(),
		{X: b.x.Max(), Y: b.y.Min()},
		b.Max(),
		{X: b.x.Min(), Y: b.y.Max()},
	}
}

// Hash returns a hash of the box, consistent with ==.
func (b Box2I) Hash() uint64 {
	return hashCombine(17, b.x.Hash(), b.y.Hash())
}

func (b Box2I) String() string {
	if b.IsEmpty() {
		return "Box2I()"
	}
	return fmt.Sprintf("Box2I(Point2I%v, Extent2I%v)", b.Min(), b.Dimensions())
}
