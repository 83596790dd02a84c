// Package angle provides a unit-safe angular value type.
//
// An Angle always stores radians internally; values are constructed
// from and reported in explicit units, so a bare float64 of unknown
// unit never crosses an API boundary.
package angle

import (
	"fmt"
	"math"
)

// An Angle is an angular value. Angle is a defined float64 type
// holding radians, so the ordinary arithmetic and comparison operators
// apply directly.
type Angle float64

// A Unit is the size of an angular unit in radians.
type Unit float64

const (
	Radians         Unit = 1
	Degrees         Unit = math.Pi / 180
	Hours           Unit = math.Pi * 15 / 180
	Arcminutes      Unit = Degrees / 60
	Arcseconds      Unit = Degrees / 3600
	Milliarcseconds Unit = Arcseconds / 1000
)

const twoPi = 2 * math.Pi

// New returns the angle of v units.
func New(v float64, u Unit) Angle {
	return Angle(v * float64(u))
}

// In returns the angle expressed in the given unit.
func (a Angle) In(u Unit) float64 {
	return float64(a) / float64(u)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.In(Degrees) }

// Hours returns the angle in hours of right ascension (15 degrees per
// hour).
func (a Angle) Hours() float64 { return a.In(Hours) }

// Arcminutes returns the angle in minutes of arc.
func (a Angle) Arcminutes() float64 { return a.In(Arcminutes) }

// Arcseconds returns the angle in seconds of arc.
func (a Angle) Arcseconds() float64 { return a.In(Arcseconds) }

// Milliarcseconds returns the angle in thousandths of a second of arc.
func (a Angle) Milliarcseconds() float64 { return a.In(Milliarcseconds) }

// IsFinite reports whether the angle is neither infinite nor NaN.
func (a Angle) IsFinite() bool {
	return !math.IsInf(float64(a), 0) && !math.IsNaN(float64(a))
}

// Wrapped returns the angle wrapped into [0, 2π). The result may still
// equal 2π due to roundoff for angles an epsilon below zero, so the
// bound is enforced explicitly.
func (a Angle) Wrapped() Angle {
	w := math.Mod(float64(a), twoPi)
	if w < 0 {
		w += twoPi
	}
	// A tiny negative wraps onto 2π exactly.
	if w >= twoPi {
		w = 0
	}
	return Angle(w)
}

// WrappedCtr returns the angle wrapped into [-π, π).
func (a Angle) WrappedCtr() Angle {
	w := math.Mod(float64(a), twoPi)
	if w < -math.Pi {
		w += twoPi
		if w >= math.Pi {
			w = -math.Pi
		}
	} else if w >= math.Pi {
		w -= twoPi
		if w < -math.Pi {
			w = -math.Pi
		}
	}
	return Angle(w)
}

// WrappedNear returns the angle wrapped into [ref-π, ref+π), the
// single turn centered on the reference angle.
func (a Angle) WrappedNear(ref Angle) Angle {
	w := float64((a-ref).WrappedCtr()) + float64(ref)
	// Roundoff in the addition can push the result out of range.
	if w-float64(ref) >= math.Pi {
		w -= twoPi
	}
	if w-float64(ref) < -math.Pi {
		w += twoPi
	}
	return Angle(w)
}

// Separation returns the signed on-circle separation from other to a,
// in [-π, π).
func (a Angle) Separation(other Angle) Angle {
	return (a - other).WrappedCtr()
}

func (a Angle) String() string {
	return fmt.Sprintf("%g rad", float64(a))
}
