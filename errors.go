package pixgeom

import (
	"errors"
	"math"
)

// ErrOverflow indicates that a bound or size computation on a discrete
// interval or box does not fit in int32. It is always detected before
// narrowing; results never wrap silently.
var ErrOverflow = errors.New("integer overflow")

// ErrInvalidParameter indicates a non-finite input where a finite one
// is required, a NaN passed to a containment query, or an invalid
// EdgeHandling value.
var ErrInvalidParameter = errors.New("invalid parameter")

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// hashCombine folds vals into seed, boost-style. Used to implement the
// Hash methods, which are consistent with equality.
func hashCombine(seed uint64, vals ...uint64) uint64 {
	for _, v := range vals {
		seed ^= v + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2)
	}
	return seed
}
