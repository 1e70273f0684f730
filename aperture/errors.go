// SPDX-License-Identifier: MIT
// Package: paraxial/aperture
//
// errors.go: sentinel errors of aperture resolution.

package aperture

import (
	"fmt"

	"github.com/katalvlaran/paraxial/optic"
)

var (
	// ErrNoAperture indicates that the system carries no aperture
	// specification (optic.ApertureNone).
	ErrNoAperture = fmt.Errorf("%w: aperture: no aperture specified", optic.ErrInvalidConfiguration)

	// ErrInvalidNA indicates a numerical aperture outside (0, n).
	ErrInvalidNA = fmt.Errorf("%w: aperture: numerical aperture out of range", optic.ErrInvalidConfiguration)

	// ErrDegenerateAperture indicates that no finite pupil satisfies the
	// specification (zero value, afocal system, image at infinity).
	ErrDegenerateAperture = fmt.Errorf("%w: aperture: degenerate aperture", optic.ErrInvalidConfiguration)

	// ErrDegenerateStop indicates that the marginal ray crosses the stop on
	// axis, so no pupil size maps to the stop size. It also wraps the
	// trace error behind the degeneracy (pupil at infinity, object in the
	// pupil plane).
	ErrDegenerateStop = fmt.Errorf("%w: aperture: marginal ray height at the stop is zero", optic.ErrInvalidConfiguration)

	// ErrNoStopSize indicates FloatByStopSize with neither an aperture value
	// nor a stop semi-diameter.
	ErrNoStopSize = fmt.Errorf("%w: aperture: stop size unknown", optic.ErrInvalidConfiguration)
)
