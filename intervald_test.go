package pixgeom_test

import (
	"math"
	"slices"
	"testing"

	"deedles.dev/pixgeom"
	"github.com/stretchr/testify/require"
)

func mustIntervalD(t *testing.T, min, max float64) pixgeom.IntervalD {
	t.Helper()
	s, err := pixgeom.IntervalDFromMinMax(min, max)
	require.NoError(t, err)
	return s
}

func TestIntervalDEmpty(t *testing.T) {
	var zero pixgeom.IntervalD
	require.True(t, zero.IsEmpty())
	require.EqualValues(t, 0, zero.Size())
	require.True(t, math.IsNaN(zero.Min()))
	require.True(t, math.IsNaN(zero.Max()))
	require.True(t, math.IsNaN(zero.Center()))

	for _, mk := range []func() (pixgeom.IntervalD, error){
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromMinMax(3, 1) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromMinMax(math.NaN(), 5) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromMinMax(0, math.NaN()) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromMinMax(math.Inf(1), math.Inf(-1)) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromMinSize(2, -1) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromMinSize(2, math.NaN()) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromMinSize(2, math.Inf(-1)) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromCenterSize(math.NaN(), 3) },
		func() (pixgeom.IntervalD, error) { return pixgeom.IntervalDFromCenterSize(2, -1) },
	} {
		s, err := mk()
		require.NoError(t, err)
		require.True(t, s.IsEmpty())
		require.Equal(t, zero, s)
		require.Equal(t, zero.Hash(), s.Hash())
	}
}

func TestIntervalDZeroSizePoint(t *testing.T) {
	// A single point is a legitimate non-empty interval, unlike for
	// IntervalI.
	s := mustIntervalD(t, 3, 3)
	require.False(t, s.IsEmpty())
	require.EqualValues(t, 0, s.Size())
	ok, err := s.Contains(3)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIntervalDFromMinMax(t *testing.T) {
	s := mustIntervalD(t, -1.5, 2.25)
	require.Equal(t, -1.5, s.Min())
	require.Equal(t, 2.25, s.Max())
	require.Equal(t, 3.75, s.Size())
	require.Equal(t, 0.375, s.Center())

	// Round trip: reconstructing from the bounds reproduces the value.
	require.Equal(t, s, mustIntervalD(t, s.Min(), s.Max()))
}

func TestIntervalDInfinite(t *testing.T) {
	s := mustIntervalD(t, math.Inf(-1), 5)
	require.False(t, s.IsEmpty())
	require.False(t, s.IsFinite())
	require.True(t, math.IsInf(s.Size(), 1))
	require.True(t, math.IsNaN(s.Center()))

	ok, err := s.Contains(-1e300)
	require.NoError(t, err)
	require.True(t, ok)

	// Infinite bounds are unaffected by shifting and dilation.
	shifted, err := s.ShiftedBy(2)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, math.Inf(-1), 7), shifted)

	dilated, err := s.DilatedBy(1)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, math.Inf(-1), 6), dilated)

	// Reflection turns an infinite lower bound into an infinite upper
	// bound.
	reflected, err := s.ReflectedAbout(0)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, -5, math.Inf(1)), reflected)

	// A degenerate interval at infinity is ambiguous.
	_, err = pixgeom.IntervalDFromMinMax(math.Inf(1), math.Inf(1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = pixgeom.IntervalDFromMinMax(math.Inf(-1), math.Inf(-1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
}

func TestIntervalDSizeConstructorsRejectInfinity(t *testing.T) {
	_, err := pixgeom.IntervalDFromMinSize(math.Inf(-1), 1)
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = pixgeom.IntervalDFromMinSize(0, math.Inf(1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = pixgeom.IntervalDFromMaxSize(math.Inf(1), 1)
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = pixgeom.IntervalDFromMaxSize(0, math.Inf(1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = pixgeom.IntervalDFromCenterSize(math.Inf(1), 1)
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = pixgeom.IntervalDFromCenterSize(0, math.Inf(1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	// One infinite, one NaN still fails.
	_, err = pixgeom.IntervalDFromCenterSize(math.Inf(1), math.NaN())
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
}

func TestIntervalDFromSizes(t *testing.T) {
	s, err := pixgeom.IntervalDFromMinSize(1, 2.5)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, 1, 3.5), s)

	s, err = pixgeom.IntervalDFromMaxSize(3.5, 2.5)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, 1, 3.5), s)

	s, err = pixgeom.IntervalDFromCenterSize(2, 3)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, 0.5, 3.5), s)
}

func TestIntervalDFromSpanned(t *testing.T) {
	s, err := pixgeom.IntervalDFromSpanned(slices.Values([]float64{2.5, -1, 0.25}))
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, -1, 2.5), s)

	s, err = pixgeom.IntervalDFromSpanned(slices.Values([]float64(nil)))
	require.NoError(t, err)
	require.True(t, s.IsEmpty())

	_, err = pixgeom.IntervalDFromSpanned(slices.Values([]float64{0, math.Inf(1)}))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
}

func TestIntervalDContainsNaN(t *testing.T) {
	s := mustIntervalD(t, 0, 1)
	_, err := s.Contains(math.NaN())
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)

	// An empty interval still rejects a malformed query rather than
	// reporting false.
	_, err = pixgeom.IntervalD{}.Contains(math.NaN())
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
}

func TestIntervalDContains(t *testing.T) {
	s := mustIntervalD(t, 0, 2)
	for point, want := range map[float64]bool{0: true, 2: true, 1.5: true, -0.1: false, 2.1: false} {
		ok, err := s.Contains(point)
		require.NoError(t, err)
		require.Equal(t, want, ok)
	}

	var empty pixgeom.IntervalD
	require.True(t, s.ContainsInterval(empty))
	require.True(t, empty.ContainsInterval(empty))
	require.False(t, empty.ContainsInterval(s))
	require.True(t, s.ContainsInterval(s))
	require.True(t, s.ContainsInterval(mustIntervalD(t, 0.5, 1.5)))
	require.False(t, s.ContainsInterval(mustIntervalD(t, 0.5, 2.5)))
}

func TestIntervalDOverlaps(t *testing.T) {
	var empty pixgeom.IntervalD
	intervals := []pixgeom.IntervalD{
		empty,
		mustIntervalD(t, 0, 1),
		mustIntervalD(t, 1, 2),
		mustIntervalD(t, 2.5, 3),
		mustIntervalD(t, math.Inf(-1), 0.5),
	}
	for _, lhs := range intervals {
		for _, rhs := range intervals {
			require.Equal(t, !lhs.IsDisjointFrom(rhs), lhs.Overlaps(rhs))
		}
		require.False(t, lhs.Overlaps(empty))
	}
	// Closed intervals touching at a point overlap.
	require.True(t, intervals[1].Overlaps(intervals[2]))
	require.False(t, intervals[1].Overlaps(intervals[3]))
}

func TestIntervalDDilateErode(t *testing.T) {
	s := mustIntervalD(t, 1, 5)

	d, err := s.DilatedBy(2)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, -1, 7), d)

	e, err := d.ErodedBy(2)
	require.NoError(t, err)
	require.Equal(t, s, e)

	// Eroding exactly to the midpoint leaves a zero-size, non-empty
	// interval; eroding past it is empty.
	e, err = mustIntervalD(t, 0, 2).ErodedBy(1)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, 1, 1), e)
	e, err = mustIntervalD(t, 0, 2).ErodedBy(1.5)
	require.NoError(t, err)
	require.True(t, e.IsEmpty())

	_, err = s.DilatedBy(math.Inf(1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = s.DilatedBy(math.NaN())
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
}

func TestIntervalDShiftReflect(t *testing.T) {
	s := mustIntervalD(t, 1, 3)

	shifted, err := s.ShiftedBy(0.5)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, 1.5, 3.5), shifted)

	reflected, err := s.ReflectedAbout(0)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, -3, -1), reflected)

	_, err = s.ShiftedBy(math.Inf(1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)
	_, err = s.ReflectedAbout(math.NaN())
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)

	var empty pixgeom.IntervalD
	shifted, err = empty.ShiftedBy(1)
	require.NoError(t, err)
	require.True(t, shifted.IsEmpty())
}

func TestIntervalDExpandedTo(t *testing.T) {
	var empty pixgeom.IntervalD

	s, err := empty.ExpandedTo(2)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, 2, 2), s)

	s, err = mustIntervalD(t, 0, 1).ExpandedTo(2)
	require.NoError(t, err)
	require.Equal(t, mustIntervalD(t, 0, 2), s)

	_, err = empty.ExpandedTo(math.Inf(1))
	require.ErrorIs(t, err, pixgeom.ErrInvalidParameter)

	other := mustIntervalD(t, 5, 6)
	require.Equal(t, other, empty.ExpandedToInterval(other))
	require.Equal(t, other, other.ExpandedToInterval(empty))
	require.Equal(t, mustIntervalD(t, 0, 6), mustIntervalD(t, 0, 1).ExpandedToInterval(other))
}

func TestIntervalDClippedTo(t *testing.T) {
	s := mustIntervalD(t, 0, 10)
	require.Equal(t, mustIntervalD(t, 2, 10), s.ClippedTo(mustIntervalD(t, 2, 20)))
	require.True(t, s.ClippedTo(mustIntervalD(t, 20, 30)).IsEmpty())
	require.True(t, s.ClippedTo(pixgeom.IntervalD{}).IsEmpty())
}

func TestIntervalDFromI(t *testing.T) {
	s := mustIntervalI(t, 0, 2)
	d := pixgeom.IntervalDFromI(s)
	require.Equal(t, mustIntervalD(t, -0.5, 2.5), d)
	require.EqualValues(t, 3, d.Size())

	require.True(t, pixgeom.IntervalDFromI(pixgeom.IntervalI{}).IsEmpty())
}

func TestIntervalDString(t *testing.T) {
	require.Equal(t, "IntervalD(min=1, max=3.5)", mustIntervalD(t, 1, 3.5).String())
	require.Equal(t, "IntervalD()", pixgeom.IntervalD{}.String())
}
