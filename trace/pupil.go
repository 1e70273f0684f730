// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// pupil.go: entrance and exit pupil locations.

package trace

import (
	"github.com/katalvlaran/paraxial/matrix"
	"github.com/katalvlaran/paraxial/numeric"
	"github.com/katalvlaran/paraxial/optic"
)

// EntrancePupilLocation returns the axial position of the entrance pupil,
// the image of the stop seen from object space, measured from surface 1.
//
// With M the matrix from surface 1 to the stop vertex (before refraction at
// the stop), an object-space ray crossing the axis at EPL reaches the stop
// centre when n·B − A·EPL = 0.
//
// Errors: optic.ErrNoStop, ErrPupilAtInfinity (object-space telecentric).
func EntrancePupilLocation(sys *optic.System, wl float64) (float64, error) {
	stop, err := sys.StopIndex()
	if err != nil {
		return 0, err
	}
	if stop == 1 {
		return 0, nil
	}

	front, err := SystemMatrix(sys, wl, 1, stop-1)
	if err != nil {
		return 0, err
	}
	gap, err := matrix.Transfer(sys.Z(stop)-sys.Z(stop-1), sys.Index(stop-1, wl))
	if err != nil {
		return 0, err
	}
	m := matrix.Chain(front, gap)
	if numeric.IsZero(m.A) {
		return 0, ErrPupilAtInfinity
	}

	return sys.Index(0, wl) * m.B / m.A, nil
}

// ExitPupilLocation returns the axial position of the exit pupil, the image
// of the stop seen from image space, measured from the image surface.
//
// Errors: optic.ErrNoStop, ErrPupilAtInfinity (image-space telecentric).
func ExitPupilLocation(sys *optic.System, wl float64) (float64, error) {
	stop, err := sys.StopIndex()
	if err != nil {
		return 0, err
	}

	m, err := SystemMatrix(sys, wl, stop, sys.ImageIndex())
	if err != nil {
		return 0, err
	}
	if numeric.IsZero(m.D) {
		return 0, ErrPupilAtInfinity
	}

	return -m.B * sys.Index(sys.ImageIndex(), wl) / m.D, nil
}
