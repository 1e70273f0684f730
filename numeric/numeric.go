// SPDX-License-Identifier: MIT
// Package: paraxial/numeric
//
// numeric.go: floating-point predicates.

package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultTolerance is the relative tolerance used by Close when callers have
// no better bound. It matches the precision the reference prescriptions are
// published with.
const DefaultTolerance = 1e-9

// IsZero reports whether x is exactly zero. Paraxial degeneracies (zero power,
// a stop sitting on a node) produce exact zeros in the recurrence, so no
// epsilon is applied.
func IsZero[T constraints.Float](x T) bool {
	return x == 0
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T constraints.Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsInf reports whether x is +Inf or -Inf.
func IsInf[T constraints.Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// Close reports whether a and b agree within relative tolerance rtol, with
// rtol also used as the absolute floor near zero.
func Close[T constraints.Float](a, b, rtol T) bool {
	if a == b {
		return true
	}
	diff := math.Abs(float64(a - b))
	scale := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if scale < 1 {
		scale = 1
	}

	return diff <= float64(rtol)*scale
}

// Radians converts an angle in degrees to radians.
func Radians[T constraints.Float](deg T) T {
	return deg * math.Pi / 180
}
