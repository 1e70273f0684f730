// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// errors.go: sentinel errors of ray tracing.

package trace

import (
	"fmt"

	"github.com/katalvlaran/paraxial/optic"
)

var (
	// ErrObjectAtInfinity indicates a request that needs a finite object
	// point (a non-axial field) while the object sits at infinity.
	ErrObjectAtInfinity = fmt.Errorf("%w: trace: finite object point requested for an object at infinity", optic.ErrInvalidConfiguration)

	// ErrPupilAtInfinity indicates that the stop images to infinity
	// (telecentric pupil), so the pupil has no finite location.
	ErrPupilAtInfinity = fmt.Errorf("%w: trace: pupil at infinity", optic.ErrInvalidConfiguration)

	// ErrObjectAtPupil indicates that the object point coincides with the
	// entrance pupil plane, so no finite ray angle reaches the pupil target.
	ErrObjectAtPupil = fmt.Errorf("%w: trace: object lies in the entrance pupil plane", optic.ErrInvalidConfiguration)

	// ErrSurfaceRange indicates an invalid first/last surface range.
	ErrSurfaceRange = fmt.Errorf("%w: trace: bad surface range", optic.ErrSurfaceIndex)

	// ErrDegenerate indicates a surface range whose traced rays do not span
	// the ray space (non-finite or collinear states).
	ErrDegenerate = fmt.Errorf("%w: trace: degenerate surface range", optic.ErrInvalidConfiguration)

	// ErrAfocal indicates a system with zero net power: focal lengths,
	// focal points and principal planes are at infinity.
	ErrAfocal = fmt.Errorf("%w: trace: afocal system", optic.ErrInvalidConfiguration)
)
