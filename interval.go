package pixgeom

import (
	"fmt"
	"iter"
	"math"
)

// An IntervalI is a closed, inclusive range of integer pixel
// coordinates. An IntervalI never has a negative size; the empty
// interval has size zero and no well-defined position, regardless of
// what Min or Max report for it.
//
// The zero value is the canonical empty interval, and every
// constructor normalizes empty results to it, so intervals may be
// compared with == and used as map keys.
//
// All constructors and operations that return an error do so with
// ErrOverflow when a bound or the size would not fit in int32;
// intermediate arithmetic is carried out in int64 so overflow is
// detected rather than wrapped.
type IntervalI struct {
	min, size int32
}

// checkRange reports an overflow error unless x fits in an int32.
func checkRange(x int64, what string) error {
	if x < math.MinInt32 || x > math.MaxInt32 {
		return fmt.Errorf("%w (%d) in interval %s", ErrOverflow, x, what)
	}
	return nil
}

func checkRangeFloat(x float64, what string) error {
	if x < math.MinInt32 || x > math.MaxInt32 {
		return fmt.Errorf("%w (%g) in interval %s", ErrOverflow, x, what)
	}
	return nil
}

func intervalIFromMinMax64(min, max int64) (IntervalI, error) {
	if max < min {
		return IntervalI{}, nil
	}
	if err := checkRange(min, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkRange(max, "maximum"); err != nil {
		return IntervalI{}, err
	}
	size := 1 + max - min
	if err := checkRange(size, "size"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(min), size: int32(size)}, nil
}

// IntervalIFromMinMax returns the interval with the given inclusive
// bounds. If max < min the result is empty.
func IntervalIFromMinMax(min, max int32) (IntervalI, error) {
	return intervalIFromMinMax64(int64(min), int64(max))
}

// IntervalIFromMinSize returns the interval of size pixels starting at
// min. A nonpositive size produces an empty interval.
func IntervalIFromMinSize(min, size int32) (IntervalI, error) {
	if size <= 0 {
		return IntervalI{}, nil
	}
	if err := checkRange(int64(min)+int64(size)-1, "maximum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: min, size: size}, nil
}

// IntervalIFromMaxSize returns the interval of size pixels ending at
// max. A nonpositive size produces an empty interval.
func IntervalIFromMaxSize(max, size int32) (IntervalI, error) {
	if size <= 0 {
		return IntervalI{}, nil
	}
	min := int64(max) - int64(size) + 1
	if err := checkRange(min, "minimum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(min), size: size}, nil
}

// IntervalIFromCenterSize returns an interval of size pixels centered
// as closely as possible on center; if the result is not empty its
// center is within half a pixel of center. A nonpositive size produces
// an empty interval without inspecting center; otherwise center must
// be finite.
func IntervalIFromCenterSize(center float64, size int32) (IntervalI, error) {
	if size <= 0 {
		return IntervalI{}, nil
	}
	if !isFinite(center) {
		return IntervalI{}, fmt.Errorf("%w: interval center %v is not finite", ErrInvalidParameter, center)
	}
	min := center - 0.5*float64(size)
	// Compensate for the pixel-center convention, where max = min + size - 1.
	min += 0.5
	if err := checkRangeFloat(min, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkRangeFloat(min+float64(size)-1, "maximum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(min), size: size}, nil
}

// IntervalIFromSpanned returns the smallest interval containing every
// point in the sequence. An empty sequence produces an empty interval.
func IntervalIFromSpanned(points iter.Seq[int32]) (IntervalI, error) {
	var result IntervalI
	for p := range points {
		var err error
		result, err = result.ExpandedTo(p)
		if err != nil {
			return IntervalI{}, err
		}
	}
	return result, nil
}

// IntervalIFromD converts a continuous interval to a discrete one.
// With Expand, the result contains every pixel overlapping other at
// all; with Shrink, only pixels wholly contained by it. An empty other
// produces an empty interval; a non-finite other is an error.
func IntervalIFromD(other IntervalD, edge EdgeHandling) (IntervalI, error) {
	if other.IsEmpty() {
		return IntervalI{}, nil
	}
	if !other.IsFinite() {
		return IntervalI{}, fmt.Errorf("%w: cannot convert non-finite IntervalD to IntervalI", ErrInvalidParameter)
	}
	var min, max float64
	switch edge {
	case Expand:
		min = math.Ceil(other.Min() - 0.5)
		max = math.Floor(other.Max() + 0.5)
	case Shrink:
		min = math.Ceil(other.Min() + 0.5)
		max = math.Floor(other.Max() - 0.5)
	default:
		return IntervalI{}, fmt.Errorf("%w: unknown edge handling %d", ErrInvalidParameter, int(edge))
	}
	if max < min {
		return IntervalI{}, nil
	}
	if err := checkRangeFloat(min, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkRangeFloat(max, "maximum"); err != nil {
		return IntervalI{}, err
	}
	return intervalIFromMinMax64(int64(min), int64(max))
}

// Min returns the interval's minimum coordinate (inclusive).
func (s IntervalI) Min() int32 { return s.min }

// Max returns the interval's maximum coordinate (inclusive).
func (s IntervalI) Max() int32 { return s.min + s.size - 1 }

// Begin returns the interval's first coordinate, equal to Min.
func (s IntervalI) Begin() int32 { return s.min }

// End returns the coordinate one past the interval's maximum.
func (s IntervalI) End() int32 { return s.min + s.size }

// Size returns the number of pixels in the interval.
func (s IntervalI) Size() int32 { return s.size }

// Slice returns the half-open [begin, end) bounds of the interval for
// indexing an array of pixels.
func (s IntervalI) Slice() (begin, end int) {
	return int(s.min), int(s.min + s.size)
}

// IsEmpty reports whether the interval contains no points.
func (s IntervalI) IsEmpty() bool { return s.size == 0 }

// Contains reports whether the interval contains the point. An empty
// interval contains nothing.
func (s IntervalI) Contains(point int32) bool {
	// Empty intervals are handled implicitly: they have max < min.
	return point >= s.Min() && point <= s.Max()
}

// ContainsInterval reports whether every point in other is also in s.
// An empty other is contained by every interval, including empty ones.
func (s IntervalI) ContainsInterval(other IntervalI) bool {
	return other.IsEmpty() || (other.Min() >= s.Min() && other.Max() <= s.Max())
}

// Overlaps reports whether any point is in both s and other. Any
// overlap test involving an empty interval is false.
func (s IntervalI) Overlaps(other IntervalI) bool {
	return !s.IsDisjointFrom(other)
}

// IsDisjointFrom reports whether no point is in both s and other.
func (s IntervalI) IsDisjointFrom(other IntervalI) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return true
	}
	return s.Min() > other.Max() || s.Max() < other.Min()
}

func (s IntervalI) dilated(buffer int64) (IntervalI, error) {
	if s.IsEmpty() {
		return IntervalI{}, nil
	}
	return intervalIFromMinMax64(int64(s.Min())-buffer, int64(s.Max())+buffer)
}

// DilatedBy grows the interval by buffer on both sides. A negative
// buffer erodes instead; if the result's size would be nonpositive it
// is empty. Empty intervals stay empty.
func (s IntervalI) DilatedBy(buffer int32) (IntervalI, error) {
	return s.dilated(int64(buffer))
}

// ErodedBy shrinks the interval by buffer on both sides; it is
// equivalent to DilatedBy(-buffer).
func (s IntervalI) ErodedBy(buffer int32) (IntervalI, error) {
	return s.dilated(-int64(buffer))
}

// ShiftedBy translates the interval by offset. Empty intervals stay
// empty.
func (s IntervalI) ShiftedBy(offset int32) (IntervalI, error) {
	if s.IsEmpty() {
		return IntervalI{}, nil
	}
	min := int64(s.Min()) + int64(offset)
	if err := checkRange(min, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkRange(int64(s.Max())+int64(offset), "maximum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(min), size: s.size}, nil
}

// ReflectedAbout mirrors the interval about the given point. Empty
// intervals stay empty.
func (s IntervalI) ReflectedAbout(point int32) (IntervalI, error) {
	if s.IsEmpty() {
		return IntervalI{}, nil
	}
	max := 2*int64(point) - int64(s.Min())
	min := 2*int64(point) - int64(s.Max())
	return intervalIFromMinMax64(min, max)
}

// ExpandedTo grows the interval so that it contains the point.
// Expanding an empty interval yields a size-1 interval at the point.
func (s IntervalI) ExpandedTo(point int32) (IntervalI, error) {
	if s.IsEmpty() {
		return IntervalI{min: point, size: 1}, nil
	}
	return intervalIFromMinMax64(
		min(int64(point), int64(s.Min())),
		max(int64(point), int64(s.Max())),
	)
}

// ExpandedToInterval grows the interval so that it contains other.
// Expanding an empty interval by another is equivalent to assignment;
// expanding by an empty interval returns s unchanged.
func (s IntervalI) ExpandedToInterval(other IntervalI) (IntervalI, error) {
	if other.IsEmpty() {
		return s, nil
	}
	if s.IsEmpty() {
		return other, nil
	}
	return intervalIFromMinMax64(
		min(int64(s.Min()), int64(other.Min())),
		max(int64(s.Max()), int64(other.Max())),
	)
}

// ClippedTo returns the intersection of s and other. If they do not
// overlap, the result is empty.
func (s IntervalI) ClippedTo(other IntervalI) IntervalI {
	if s.IsEmpty() || other.IsEmpty() {
		return IntervalI{}
	}
	lo := max(s.Min(), other.Min())
	hi := min(s.Max(), other.Max())
	if hi < lo {
		return IntervalI{}
	}
	return IntervalI{min: lo, size: hi - lo + 1}
}

// Hash returns a hash of the interval, consistent with ==.
func (s IntervalI) Hash() uint64 {
	return hashCombine(17, uint64(uint32(s.min)), uint64(uint32(s.size)))
}

func (s IntervalI) String() string {
	if s.IsEmpty() {
		return "IntervalI()"
	}
	return fmt.Sprintf("IntervalI(min=%d, max=%d)", s.Min(), s.Max())
}
