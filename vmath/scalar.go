package vmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// RayEpsilon is the minimum hit distance accepted by ray queries
// Rejects self-intersection at the ray origin
const RayEpsilon = 1e-7

// Wrap01 maps t into [0, 1)
// Non-finite input maps to 0 so curve sampling always has a defined parameter
func Wrap01(t float64) float64 {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	w := t - math.Floor(t)
	// t - Floor(t) rounds up to 1.0 for tiny negative t
	if w >= 1 {
		return 0
	}
	return w
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a to b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NearlyEqual reports whether a and b differ by at most tol
func NearlyEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
