// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// field.go: ray seeding from field and pupil coordinates.

package trace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/numeric"
	"github.com/katalvlaran/paraxial/optic"
)

// Pupil fixes the entrance pupil a field ray is aimed at.
type Pupil struct {
	// Diameter of the entrance pupil.
	Diameter float64
	// Location of the entrance pupil measured from surface 1.
	Location float64
}

// Seed returns the starting state (y, u at plane z0) of the ray with
// normalized field coordinate hy that crosses the entrance pupil at
// normalized pupil coordinate py.
//
// For an object at infinity the ray travels at the field angle and is
// specified at surface 1; only FieldAngle supports non-axial fields there.
// For a finite object the ray starts at the object point returned by
// GetObjectPosition.
//
// Errors: ErrObjectAtInfinity, ErrObjectAtPupil.
func Seed(sys *optic.System, hy, py float64, p Pupil) (y, u, z0 float64, err error) {
	y1 := py * p.Diameter / 2
	z1 := sys.Z(1)

	if sys.ObjectAtInfinity() {
		if hy != 0 && sys.FieldType() != optic.FieldAngle {
			return 0, 0, 0, fmt.Errorf("%w: field type %s, Hy=%g", ErrObjectAtInfinity, sys.FieldType(), hy)
		}
		u = math.Tan(numeric.Radians(hy * sys.MaxField()))

		return y1 - u*p.Location, u, z1, nil
	}

	y0, z0, err := GetObjectPosition(sys, hy, y1, p.Location)
	if err != nil {
		return 0, 0, 0, err
	}
	dz := z1 + p.Location - z0
	if numeric.IsZero(dz) {
		return 0, 0, 0, ErrObjectAtPupil
	}

	return y0, (y1 - y0) / dz, z0, nil
}

// TraceField seeds a ray with Seed and traces it from surface 1 to the image.
func TraceField(sys *optic.System, wl, hy, py float64, p Pupil) (Path, error) {
	y, u, z0, err := Seed(sys, hy, py, p)
	if err != nil {
		return Path{}, err
	}

	return Trace(sys, wl, y, u, z0)
}
