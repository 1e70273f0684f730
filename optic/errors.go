// SPDX-License-Identifier: MIT
// Package optic: sentinel error set.
//
// ErrInvalidConfiguration is the single error kind of the module. Every other
// sentinel wraps it, so callers may match either the kind or the precise cause.

package optic

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the root of every error reported by the paraxial
// packages. Failures are never transient: the same snapshot always fails the
// same way.
var ErrInvalidConfiguration = errors.New("optic: invalid configuration")

var (
	// ErrTooFewSurfaces indicates fewer than three surfaces (object, one
	// refracting surface, image).
	ErrTooFewSurfaces = fmt.Errorf("%w: need object, refracting and image surfaces", ErrInvalidConfiguration)

	// ErrBadThickness indicates an infinite or NaN thickness after the object
	// surface, or a negative object distance.
	ErrBadThickness = fmt.Errorf("%w: bad thickness", ErrInvalidConfiguration)

	// ErrBadRadius indicates a NaN radius.
	ErrBadRadius = fmt.Errorf("%w: bad radius", ErrInvalidConfiguration)

	// ErrBadIndex indicates a medium reporting a non-finite or non-positive index.
	ErrBadIndex = fmt.Errorf("%w: bad refractive index", ErrInvalidConfiguration)

	// ErrMultipleStops indicates more than one surface flagged as the stop.
	ErrMultipleStops = fmt.Errorf("%w: more than one stop surface", ErrInvalidConfiguration)

	// ErrStopOnObject indicates the object surface was flagged as the stop.
	ErrStopOnObject = fmt.Errorf("%w: object surface cannot be the stop", ErrInvalidConfiguration)

	// ErrNoStop indicates that an operation needs the aperture stop but no
	// surface is flagged.
	ErrNoStop = fmt.Errorf("%w: no stop surface", ErrInvalidConfiguration)

	// ErrMultiplePrimary indicates more than one primary wavelength.
	ErrMultiplePrimary = fmt.Errorf("%w: more than one primary wavelength", ErrInvalidConfiguration)

	// ErrSurfaceIndex indicates a surface index outside the sequence.
	ErrSurfaceIndex = fmt.Errorf("%w: surface index out of range", ErrInvalidConfiguration)
)
