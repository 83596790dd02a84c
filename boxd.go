package pixgeom

import "fmt"

// BoxEpsilon is the relative nudge applied to a Box2D's maximum bound
// when a point is included via ExpandedTo: since containment tests the
// maximum with <, the bound must be pushed to the next representable
// magnitude past the included point.
const BoxEpsilon = 2 * 0x1p-52

// A Box2D is an axis-aligned 2-d region of continuous coordinates, the
// product of one IntervalD per axis. Unlike its per-axis intervals,
// Box2D is half-open: Contains tests the minimum with >= but the
// maximum with <, so adjacent boxes tile the plane without sharing
// boundary points. A box that is degenerate on either axis (equal
// bounds) is empty.
//
// Box2D stores its corner points rather than a corner and a size so
// that roundoff cannot affect containment tests. The zero value is the
// canonical empty box and every constructor normalizes empty results
// to it, so boxes may be compared with == and used as map keys.
type Box2D struct {
	x, y IntervalD
}

// NewBox2D composes a box from its two axis intervals. If either axis
// is empty or zero-size, the box is empty: a degenerate axis has no
// interior under half-open semantics.
func NewBox2D(x, y IntervalD) Box2D {
	if x.IsEmpty() || y.IsEmpty() || x.Size() == 0 || y.Size() == 0 {
		return Box2D{}
	}
	return Box2D{x: x, y: y}
}

func intervalDAxis(lo, hi float64, invert bool) IntervalD {
	if lo == hi {
		return IntervalD{}
	}
	if lo > hi {
		if !invert {
			return IntervalD{}
		}
		lo, hi = hi, lo
	}
	return makeIntervalD(lo, hi)
}

// Box2DFromMinMax returns the box with the given corner points. An
// axis with equal bounds makes the whole box empty; on an axis where
// min > max, the bounds are swapped if invert is true and the box is
// empty otherwise. NaN bounds produce an empty box.
func Box2DFromMinMax(min, max Point2D, invert bool) Box2D {
	return NewBox2D(
		intervalDAxis(min.X, max.X, invert),
		intervalDAxis(min.Y, max.Y, invert),
	)
}

// Box2DFromCorner returns the box with the given minimum corner and
// dimensions, with the same degenerate-axis and invert policy as
// Box2DFromMinMax.
func Box2DFromCorner(corner Point2D, dims Extent2D, invert bool) Box2D {
	return NewBox2D(
		intervalDAxis(corner.X, corner.X+dims.X, invert),
		intervalDAxis(corner.Y, corner.Y+dims.Y, invert),
	)
}

// Box2DCentered returns the box of the given size centered on center.
// Non-finite inputs produce an empty box.
func Box2DCentered(center Point2D, size Extent2D) Box2D {
	corner := center.Sub(size.Scaled(0.5))
	return Box2DFromCorner(corner, size, false)
}

// Box2DFromI converts a discrete box to a continuous one. Since a
// pixel is a unit square centered on its integer coordinates, the
// result's corners are 0.5 beyond the integer bounds on each axis.
func Box2DFromI(other Box2I) Box2D {
	if other.IsEmpty() {
		return Box2D{}
	}
	return Box2D{x: IntervalDFromI(other.x), y: IntervalDFromI(other.y)}
}

// X returns the box's x-axis interval.
func (b Box2D) X() IntervalD { return b.x }

// Y returns the box's y-axis interval.
func (b Box2D) Y() IntervalD { return b.y }

// IsEmpty reports whether the box contains no points.
func (b Box2D) IsEmpty() bool { return b.x.IsEmpty() || b.y.IsEmpty() }

// Min returns the box's minimum corner (included), with NaN
// coordinates if the box is empty.
func (b Box2D) Min() Point2D { return Point2D{X: b.x.Min(), Y: b.y.Min()} }

// Max returns the box's maximum corner (excluded from containment),
// with NaN coordinates if the box is empty.
func (b Box2D) Max() Point2D { return Point2D{X: b.x.Max(), Y: b.y.Max()} }

// Dimensions returns the box's size on each axis.
func (b Box2D) Dimensions() Extent2D { return Extent2D{X: b.x.Size(), Y: b.y.Size()} }

// Width returns the box's x-axis size.
func (b Box2D) Width() float64 { return b.x.Size() }

// Height returns the box's y-axis size.
func (b Box2D) Height() float64 { return b.y.Size() }

// Area returns the box's area, which may be +inf.
func (b Box2D) Area() float64 { return b.x.Size() * b.y.Size() }

// Center returns the box's center point, with NaN coordinates for
// empty and infinite boxes.
func (b Box2D) Center() Point2D { return Point2D{X: b.x.Center(), Y: b.y.Center()} }

// IsFinite reports whether both of the box's axes have finite size.
func (b Box2D) IsFinite() bool { return b.x.IsFinite() && b.y.IsFinite() }

// Contains reports whether the box contains the point, testing the
// maximum bound half-open: a point on the maximum edge is not
// contained. This deliberately differs from IntervalD's closed
// semantics and must not be delegated to the axis intervals.
func (b Box2D) Contains(point Point2D) bool {
	bmin, bmax := b.Min(), b.Max()
	return point.X >= bmin.X && point.Y >= bmin.Y &&
		point.X < bmax.X && point.Y < bmax.Y
}

// ContainsBox reports whether every point in other is also in b. An
// empty other is contained by every box, including empty ones.
func (b Box2D) ContainsBox(other Box2D) bool {
	return b.x.ContainsInterval(other.x) && b.y.ContainsInterval(other.y)
}

// Overlaps reports whether any point is in both b and other, using the
// half-open model: boxes that only share an edge do not overlap. Any
// overlap test involving an empty box is false.
func (b Box2D) Overlaps(other Box2D) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	bmin, bmax := b.Min(), b.Max()
	omin, omax := other.Min(), other.Max()
	return omax.X > bmin.X && omax.Y > bmin.Y &&
		omin.X < bmax.X && omin.Y < bmax.Y
}

// IsDisjointFrom reports whether no point is in both b and other.
func (b Box2D) IsDisjointFrom(other Box2D) bool {
	return !b.Overlaps(other)
}

// DilatedBy grows the box by the given buffer on each axis, which must
// be finite. Negative components erode instead; a box eroded to a
// degenerate axis is empty. Empty boxes stay empty.
func (b Box2D) DilatedBy(buffer Extent2D) (Box2D, error) {
	x, err := b.x.DilatedBy(buffer.X)
	if err != nil {
		return Box2D{}, err
	}
	y, err := b.y.DilatedBy(buffer.Y)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(x, y), nil
}

// ErodedBy shrinks the box by the given buffer on each axis; it is
// equivalent to DilatedBy of the negated buffer.
func (b Box2D) ErodedBy(buffer Extent2D) (Box2D, error) {
	return b.DilatedBy(buffer.Neg())
}

// ShiftedBy translates the box by the given offset, which must be
// finite. Empty boxes stay empty.
func (b Box2D) ShiftedBy(offset Extent2D) (Box2D, error) {
	x, err := b.x.ShiftedBy(offset.X)
	if err != nil {
		return Box2D{}, err
	}
	y, err := b.y.ShiftedBy(offset.Y)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(x, y), nil
}

// ReflectedAboutX mirrors the box about the vertical line at the given
// x coordinate, which must be finite.
func (b Box2D) ReflectedAboutX(x float64) (Box2D, error) {
	rx, err := b.x.ReflectedAbout(x)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(rx, b.y), nil
}

// ReflectedAboutY mirrors the box about the horizontal line at the
// given y coordinate, which must be finite.
func (b Box2D) ReflectedAboutY(y float64) (Box2D, error) {
	ry, err := b.y.ReflectedAbout(y)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(b.x, ry), nil
}

// tweakMax pushes x past itself by the smallest relative increment so
// that a half-open upper bound set from an included point still counts
// the point as inside.
func tweakMax(x float64) float64 {
	switch {
	case x < 0:
		return x * (1 - BoxEpsilon)
	case x > 0:
		return x * (1 + BoxEpsilon)
	}
	return BoxEpsilon
}

// ExpandedTo grows the box so that Contains(point) becomes true; the
// point must be finite. Because the maximum bound is excluded from
// containment, a point at or beyond it moves the bound just past the
// point, by BoxEpsilon at that magnitude. Expanding an empty box
// yields a minimal box around the point.
func (b Box2D) ExpandedTo(point Point2D) (Box2D, error) {
	if !isFinite(point.X) || !isFinite(point.Y) {
		return Box2D{}, fmt.Errorf("%w: cannot expand to a non-finite point", ErrInvalidParameter)
	}
	if b.IsEmpty() {
		return Box2D{
			x: makeIntervalD(point.X, tweakMax(point.X)),
			y: makeIntervalD(point.Y, tweakMax(point.Y)),
		}, nil
	}
	x := b.x
	switch {
	case point.X < x.lo:
		x = makeIntervalD(point.X, x.hi)
	case point.X >= x.hi:
		x = makeIntervalD(x.lo, tweakMax(point.X))
	}
	y := b.y
	switch {
	case point.Y < y.lo:
		y = makeIntervalD(point.Y, y.hi)
	case point.Y >= y.hi:
		y = makeIntervalD(y.lo, tweakMax(point.Y))
	}
	return Box2D{x: x, y: y}, nil
}

// ExpandedToBox grows the box so that it contains other. Expanding an
// empty box by another is equivalent to assignment; expanding by an
// empty box returns b unchanged.
func (b Box2D) ExpandedToBox(other Box2D) Box2D {
	return NewBox2D(
		b.x.ExpandedToInterval(other.x),
		b.y.ExpandedToInterval(other.y),
	)
}

// ClippedTo returns the intersection of b and other. If the boxes do
// not overlap, including when they only share an edge, the result is
// empty.
func (b Box2D) ClippedTo(other Box2D) Box2D {
	return NewBox2D(
		b.x.ClippedTo(other.x),
		b.y.ClippedTo(other.y),
	)
}

// FlipLR mirrors the box horizontally within a parent region of the
// given width, as when flipping an image left-to-right. Empty boxes
// stay empty, and a non-finite width produces an empty box.
func (b Box2D) FlipLR(xExtent float64) Box2D {
	if b.IsEmpty() || !isFinite(xExtent) {
		return Box2D{}
	}
	return NewBox2D(makeIntervalD(xExtent-b.x.hi, xExtent-b.x.lo), b.y)
}

// FlipTB mirrors the box vertically within a parent region of the
// given height, as when flipping an image top-to-bottom. Empty boxes
// stay empty, and a non-finite height produces an empty box.
func (b Box2D) FlipTB(yExtent float64) Box2D {
	if b.IsEmpty() || !isFinite(yExtent) {
		return Box2D{}
	}
	return NewBox2D(b.x, makeIntervalD(yExtent-b.y.hi, yExtent-b.y.lo))
}

// Corners returns the box's corner points, counterclockwise from the
// minimum corner.
func (b Box2D) Corners() [4]Point2D {
	return [4]Point2D{
		b.Min(),
		{X: b.x.Max(), Y: b.y.Min()},
		b.Max(),
		{X: b.x.Min(), Y: b.y.Max()},
	}
}

// Hash returns a hash of the box, consistent with ==. All empty boxes
// hash equal.
func (b Box2D) Hash() uint64 {
	if b.IsEmpty() {
		return 179
	}
	return hashCombine(17, b.x.Hash(), b.y.Hash())
}

func (b Box2D) String() string {
	if b.IsEmpty() {
		return "Box2D()"
	}
	return fmt.Sprintf("Box2D(Point2D%v, Extent2D%v)", b.Min(), b.Dimensions())
}
