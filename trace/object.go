// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// object.go: object-space ray start points.

package trace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/numeric"
	"github.com/katalvlaran/paraxial/optic"
)

// GetObjectPosition returns the object point (height y, axial position z)
// for normalized field Hy, given the target ray height y1 in the entrance
// pupil and the pupil location epl (from surface 1).
//
// Finite object:
//   - z is the object surface position;
//   - FieldObjectHeight: y = −Hy·maxField;
//   - FieldAngle:        y = −tan(Hy·maxField)·(z₁ + epl − z), so the ray
//     through the pupil centre leaves at the field angle.
//
// Object at infinity: only the axial point is defined. Hy = 0 yields
// (y1, z₁): the ray is specified directly at surface 1.
//
// Errors: ErrObjectAtInfinity when Hy ≠ 0 and the object is at infinity,
// whatever the field type.
func GetObjectPosition(sys *optic.System, hy, y1, epl float64) (y, z float64, err error) {
	z1 := sys.Z(1)
	if sys.ObjectAtInfinity() {
		if hy != 0 {
			return 0, 0, fmt.Errorf("%w: field type %s, Hy=%g", ErrObjectAtInfinity, sys.FieldType(), hy)
		}

		return y1, z1, nil
	}

	z = sys.Z(0)
	field := hy * sys.MaxField()
	switch sys.FieldType() {
	case optic.FieldObjectHeight:
		y = -field
	default:
		y = -math.Tan(numeric.Radians(field)) * (z1 + epl - z)
	}

	return y, z, nil
}
