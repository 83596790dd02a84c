package pixgeom

import (
	"fmt"
	"iter"
	"math"
)

// An IntervalD is a closed range of real coordinates. Its bounds are
// included in the interval, and a non-empty interval may have equal
// bounds: unlike IntervalI, which models a discrete set of pixels,
// IntervalD models a continuum in which a single point is a legitimate
// non-empty interval.
//
// Min may be negative infinity and Max positive infinity, giving an
// interval of infinite size. The zero value is the canonical empty
// interval; every constructor normalizes empty results to it, so
// intervals may be compared with == and used as map keys. Min and Max
// report NaN for an empty interval, but only IsEmpty is authoritative.
type IntervalD struct {
	lo, hi   float64
	nonempty bool
}

// makeIntervalD builds an interval without validating for ambiguous
// like-signed infinite bounds; callers must rule those out first.
func makeIntervalD(min, max float64) IntervalD {
	if max < min || math.IsNaN(min) || math.IsNaN(max) {
		return IntervalD{}
	}
	return IntervalD{lo: min, hi: max, nonempty: true}
}

// IntervalDFromMinMax returns the interval with the given inclusive
// bounds. If max < min or either bound is NaN the result is empty. A
// min of -inf or a max of +inf gives an infinite interval; a +inf min
// or -inf max is an error.
func IntervalDFromMinMax(min, max float64) (IntervalD, error) {
	if max < min || math.IsNaN(min) || math.IsNaN(max) {
		return IntervalD{}, nil
	}
	if math.IsInf(min, 1) {
		return IntervalD{}, fmt.Errorf("%w: cannot set interval minimum to +infinity", ErrInvalidParameter)
	}
	if math.IsInf(max, -1) {
		return IntervalD{}, fmt.Errorf("%w: cannot set interval maximum to -infinity", ErrInvalidParameter)
	}
	return IntervalD{lo: min, hi: max, nonempty: true}, nil
}

// IntervalDFromMinSize returns the interval [min, min+size]. A
// negative or NaN size produces an empty interval. Infinite min, or
// +inf size, is ambiguous and rejected; use IntervalDFromMinMax to
// construct infinite intervals.
func IntervalDFromMinSize(min, size float64) (IntervalD, error) {
	if math.IsInf(min, 0) || (math.IsInf(size, 0) && size > 0) {
		return IntervalD{}, fmt.Errorf("%w: ambiguously infinite interval; use IntervalDFromMinMax to construct infinite intervals", ErrInvalidParameter)
	}
	return IntervalDFromMinMax(min, min+size)
}

// IntervalDFromMaxSize returns the interval [max-size, max]. A
// negative or NaN size produces an empty interval. Infinite max, or
// +inf size, is ambiguous and rejected; use IntervalDFromMinMax to
// construct infinite intervals.
func IntervalDFromMaxSize(max, size float64) (IntervalD, error) {
	if math.IsInf(max, 0) || (math.IsInf(size, 0) && size > 0) {
		return IntervalD{}, fmt.Errorf("%w: ambiguously infinite interval; use IntervalDFromMinMax to construct infinite intervals", ErrInvalidParameter)
	}
	return IntervalDFromMinMax(max-size, max)
}

// IntervalDFromCenterSize returns the interval of the given size
// centered on center. Neither argument may be infinite; a negative or
// NaN size produces an empty interval.
func IntervalDFromCenterSize(center, size float64) (IntervalD, error) {
	if math.IsInf(center, 0) || math.IsInf(size, 0) {
		return IntervalD{}, fmt.Errorf("%w: interval center and size must be finite", ErrInvalidParameter)
	}
	return IntervalDFromMinSize(center-0.5*size, size)
}

// IntervalDFromSpanned returns the smallest interval containing every
// point in the sequence; the points must be finite. An empty sequence
// produces an empty interval.
func IntervalDFromSpanned(points iter.Seq[float64]) (IntervalD, error) {
	var result IntervalD
	for p := range points {
		var err error
		result, err = result.ExpandedTo(p)
		if err != nil {
			return IntervalD{}, err
		}
	}
	return result, nil
}

// IntervalDFromI converts a discrete interval to a continuous one.
// Since a pixel is a unit square centered on its integer coordinate,
// the result has the same size but bounds 0.5 below and above the
// integer bounds.
func IntervalDFromI(other IntervalI) IntervalD {
	if other.IsEmpty() {
		return IntervalD{}
	}
	return makeIntervalD(float64(other.Min())-0.5, float64(other.Max())+0.5)
}

// Min returns the interval's minimum coordinate, or NaN if the
// interval is empty.
func (s IntervalD) Min() float64 {
	if !s.nonempty {
		return math.NaN()
	}
	return s.lo
}

// Max returns the interval's maximum coordinate, or NaN if the
// interval is empty.
func (s IntervalD) Max() float64 {
	if !s.nonempty {
		return math.NaN()
	}
	return s.hi
}

// Size returns the extent of the interval: zero for an empty interval
// (though not all zero-size intervals are empty) and +inf for an
// interval with an infinite bound.
func (s IntervalD) Size() float64 {
	if !s.nonempty {
		return 0
	}
	return s.hi - s.lo
}

// Center returns the midpoint of the interval, or NaN for empty and
// infinite intervals, whose midpoint is undefined.
func (s IntervalD) Center() float64 {
	if !s.nonempty || math.IsInf(s.Size(), 0) {
		return math.NaN()
	}
	return 0.5 * (s.lo + s.hi)
}

// IsEmpty reports whether the interval contains no points.
func (s IntervalD) IsEmpty() bool { return !s.nonempty }

// IsFinite reports whether the interval's size is finite.
func (s IntervalD) IsFinite() bool { return !math.IsInf(s.Size(), 0) }

// Contains reports whether the interval contains the point. An empty
// interval contains nothing. A NaN point is an error rather than
// false: the query itself is malformed.
func (s IntervalD) Contains(point float64) (bool, error) {
	if math.IsNaN(point) {
		return false, fmt.Errorf("%w: cannot test whether an interval contains NaN", ErrInvalidParameter)
	}
	return point >= s.Min() && point <= s.Max(), nil
}

// ContainsInterval reports whether every point in other is also in s.
// An empty other is contained by every interval, including empty ones.
func (s IntervalD) ContainsInterval(other IntervalD) bool {
	if other.IsEmpty() {
		return true
	}
	return s.nonempty && other.lo >= s.lo && other.hi <= s.hi
}

// Overlaps reports whether any point is in both s and other. Any
// overlap test involving an empty interval is false.
func (s IntervalD) Overlaps(other IntervalD) bool {
	return !s.IsDisjointFrom(other)
}

// IsDisjointFrom reports whether no point is in both s and other.
func (s IntervalD) IsDisjointFrom(other IntervalD) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return true
	}
	return s.lo > other.hi || s.hi < other.lo
}

// DilatedBy grows the interval by buffer on both sides. A negative
// buffer erodes instead; if the result's size would be negative it is
// empty. Empty intervals stay empty, and infinite bounds are
// unaffected. The buffer must be finite.
func (s IntervalD) DilatedBy(buffer float64) (IntervalD, error) {
	if !isFinite(buffer) {
		return IntervalD{}, fmt.Errorf("%w: cannot dilate or erode with a non-finite buffer", ErrInvalidParameter)
	}
	if s.IsEmpty() {
		return IntervalD{}, nil
	}
	return makeIntervalD(s.lo-buffer, s.hi+buffer), nil
}

// ErodedBy shrinks the interval by buffer on both sides; it is
// equivalent to DilatedBy(-buffer).
func (s IntervalD) ErodedBy(buffer float64) (IntervalD, error) {
	return s.DilatedBy(-buffer)
}

// ShiftedBy translates the interval by offset, which must be finite.
// Empty intervals stay empty, and infinite bounds are unaffected.
func (s IntervalD) ShiftedBy(offset float64) (IntervalD, error) {
	if !isFinite(offset) {
		return IntervalD{}, fmt.Errorf("%w: cannot shift with a non-finite offset", ErrInvalidParameter)
	}
	if s.IsEmpty() {
		return IntervalD{}, nil
	}
	return makeIntervalD(s.lo+offset, s.hi+offset), nil
}

// ReflectedAbout mirrors the interval about the given point, which
// must be finite. Empty intervals stay empty; an infinite bound
// becomes the opposite bound with the opposite sign.
func (s IntervalD) ReflectedAbout(point float64) (IntervalD, error) {
	if !isFinite(point) {
		return IntervalD{}, fmt.Errorf("%w: cannot reflect about a non-finite point", ErrInvalidParameter)
	}
	if s.IsEmpty() {
		return IntervalD{}, nil
	}
	return makeIntervalD(2*point-s.hi, 2*point-s.lo), nil
}

// ExpandedTo grows the interval so that it contains the point, which
// must be finite. Expanding an empty interval yields the zero-size
// interval at the point.
func (s IntervalD) ExpandedTo(point float64) (IntervalD, error) {
	if !isFinite(point) {
		return IntervalD{}, fmt.Errorf("%w: cannot expand to a non-finite point", ErrInvalidParameter)
	}
	if s.IsEmpty() {
		return makeIntervalD(point, point), nil
	}
	return makeIntervalD(min(s.lo, point), max(s.hi, point)), nil
}

// ExpandedToInterval grows the interval so that it contains other.
// Expanding an empty interval by another is equivalent to assignment;
// expanding by an empty interval returns s unchanged.
func (s IntervalD) ExpandedToInterval(other IntervalD) IntervalD {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	return makeIntervalD(min(s.lo, other.lo), max(s.hi, other.hi))
}

// ClippedTo returns the intersection of s and other. If they do not
// overlap, the result is empty.
func (s IntervalD) ClippedTo(other IntervalD) IntervalD {
	if s.IsEmpty() || other.IsEmpty() {
		return IntervalD{}
	}
	return makeIntervalD(max(s.lo, other.lo), min(s.hi, other.hi))
}

// Hash returns a hash of the interval, consistent with ==. All empty
// intervals hash equal.
func (s IntervalD) Hash() uint64 {
	if s.IsEmpty() {
		return 113
	}
	return hashCombine(17, math.Float64bits(s.lo), math.Float64bits(s.hi))
}

func (s IntervalD) String() string {
	if s.IsEmpty() {
		return "IntervalD()"
	}
	return fmt.Sprintf("IntervalD(min=%v, max=%v)", s.lo, s.hi)
}
