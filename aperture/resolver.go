// SPDX-License-Identifier: MIT
// Package: paraxial/aperture
//
// resolver.go: aperture specification to entrance pupil diameter and location.

package aperture

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/numeric"
	"github.com/katalvlaran/paraxial/optic"
	"github.com/katalvlaran/paraxial/trace"
)

// Result is a resolved entrance pupil.
type Result struct {
	// Diameter is the entrance pupil diameter (EPD).
	Diameter float64
	// Location is the entrance pupil position relative to surface 1 (EPL).
	Location float64
}

// Pupil returns r as the aiming target used by trace.TraceField.
func (r Result) Pupil() trace.Pupil {
	return trace.Pupil{Diameter: r.Diameter, Location: r.Location}
}

// Resolve returns the entrance pupil of sys at wavelength wl.
//
// Errors: optic.ErrNoStop, trace.ErrPupilAtInfinity and every error of
// Diameter.
func Resolve(sys *optic.System, wl float64) (Result, error) {
	epl, err := entrancePupil(sys, wl)
	if err != nil {
		return Result{}, err
	}
	epd, err := diameter(sys, wl, epl)
	if err != nil {
		return Result{}, err
	}

	return Result{Diameter: epd, Location: epl}, nil
}

// Diameter returns the entrance pupil diameter of sys at wavelength wl.
// An EntrancePupilDiameter specification, and ImageFNumber with the object
// at infinity, need no stop; every other mode locates the entrance pupil
// first.
//
// Errors: ErrNoAperture, ErrInvalidNA, ErrDegenerateAperture,
// ErrDegenerateStop, ErrNoStopSize, trace.ErrObjectAtInfinity,
// trace.ErrObjectAtPupil, optic.ErrNoStop, trace.ErrPupilAtInfinity.
func Diameter(sys *optic.System, wl float64) (float64, error) {
	a := sys.Aperture()
	switch {
	case a.Type == optic.EntrancePupilDiameter,
		a.Type == optic.ImageFNumber && sys.ObjectAtInfinity(),
		a.Type == optic.ApertureNone:
		return diameter(sys, wl, 0)
	}

	epl, err := entrancePupil(sys, wl)
	if err != nil {
		return 0, err
	}

	return diameter(sys, wl, epl)
}

func diameter(sys *optic.System, wl, epl float64) (float64, error) {
	a := sys.Aperture()
	switch a.Type {
	case optic.EntrancePupilDiameter:
		if numeric.IsZero(a.Value) {
			return 0, fmt.Errorf("%w: zero entrance pupil diameter", ErrDegenerateAperture)
		}
		return a.Value, nil
	case optic.ObjectSpaceNA:
		return byObjectNA(sys, wl, epl, a.Value)
	case optic.ImageSpaceNA:
		return byImageNA(sys, wl, epl, a.Value)
	case optic.ImageFNumber:
		return byFNumber(sys, wl, epl, a.Value)
	case optic.FloatByStopSize:
		return byStopSize(sys, wl, epl, a.Value)
	default:
		return 0, fmt.Errorf("%w: type %s", ErrNoAperture, a.Type)
	}
}

// byObjectNA: the marginal ray leaves the axial object point at
// asin(NA/n₀) and reaches the entrance pupil plane at EPD/2.
func byObjectNA(sys *optic.System, wl, epl, na float64) (float64, error) {
	if sys.ObjectAtInfinity() {
		return 0, fmt.Errorf("%w: object-space NA needs a finite object", trace.ErrObjectAtInfinity)
	}
	n0 := sys.Index(0, wl)
	if !(na > 0) || na >= n0 {
		return 0, fmt.Errorf("%w: NA=%g, object index %g", ErrInvalidNA, na, n0)
	}
	dz := sys.Z(1) + epl - sys.Z(0)
	if numeric.IsZero(dz) {
		return 0, trace.ErrObjectAtPupil
	}

	return 2 * math.Abs(dz) * math.Tan(math.Asin(na/n0)), nil
}

// byImageNA scales a unit-radius marginal ray to the requested n'·u'.
func byImageNA(sys *optic.System, wl, epl, na float64) (float64, error) {
	if !(na > 0) {
		return 0, fmt.Errorf("%w: NA=%g", ErrInvalidNA, na)
	}
	if sys.ObjectAtInfinity() {
		m, err := trace.SystemMatrix(sys, wl, 1, sys.ImageIndex())
		if err != nil {
			return 0, err
		}
		if trace.IsAfocal(sys, m) {
			return 0, fmt.Errorf("%w: afocal system has no image-space NA", ErrDegenerateAperture)
		}
	}
	path, err := unitMarginal(sys, wl, epl)
	if err != nil {
		return 0, err
	}
	w := math.Abs(path.Last().Reduced())
	if numeric.IsZero(w) {
		return 0, fmt.Errorf("%w: image at infinity", ErrDegenerateAperture)
	}

	return 2 * na / w, nil
}

func byFNumber(sys *optic.System, wl, epl, fno float64) (float64, error) {
	if !(fno > 0) {
		return 0, fmt.Errorf("%w: F-number %g", ErrDegenerateAperture, fno)
	}
	if !sys.ObjectAtInfinity() {
		return byImageNA(sys, wl, epl, 1/(2*fno))
	}

	m, err := trace.SystemMatrix(sys, wl, 1, sys.ImageIndex())
	if err != nil {
		return 0, err
	}
	if trace.IsAfocal(sys, m) {
		return 0, fmt.Errorf("%w: %w", ErrDegenerateAperture, trace.ErrAfocal)
	}
	f2 := -sys.Index(sys.ImageIndex(), wl) / m.C

	return math.Abs(f2) / fno, nil
}

// byStopSize traces the unit-radius marginal ray and scales it so that it
// grazes the edge of a stop of the given diameter. A zero diameter falls
// back to the stop surface's SemiDiameter.
func byStopSize(sys *optic.System, wl, epl, diameter float64) (float64, error) {
	stop, err := sys.StopIndex()
	if err != nil {
		return 0, err
	}
	semi := diameter / 2
	if numeric.IsZero(diameter) {
		s, _ := sys.Surface(stop)
		semi = s.SemiDiameter
	}
	if !(semi > 0) {
		return 0, fmt.Errorf("%w: stop surface %d", ErrNoStopSize, stop)
	}

	path, err := unitMarginal(sys, wl, epl)
	if err != nil {
		return 0, stopDegenerate(err, stop)
	}
	r, _ := path.At(stop)
	if numeric.IsZero(r.Y) {
		return 0, fmt.Errorf("%w: stop surface %d", ErrDegenerateStop, stop)
	}

	return 2 * semi / math.Abs(r.Y), nil
}

// stopDegenerate reports the geometries in which the axial marginal ray
// crosses the stop at zero height as ErrDegenerateStop: the entrance pupil
// at infinity (stop in the back focal plane of the front group) or on the
// object (object imaged onto the stop).
func stopDegenerate(err error, stop int) error {
	if errors.Is(err, trace.ErrPupilAtInfinity) || errors.Is(err, trace.ErrObjectAtPupil) {
		return fmt.Errorf("%w: stop surface %d: %w", ErrDegenerateStop, stop, err)
	}

	return err
}

// entrancePupil locates the entrance pupil for the aperture modes that need
// it.
func entrancePupil(sys *optic.System, wl float64) (float64, error) {
	epl, err := trace.EntrancePupilLocation(sys, wl)
	if err != nil && sys.Aperture().Type == optic.FloatByStopSize {
		stop, _ := sys.StopIndex()
		return 0, stopDegenerate(err, stop)
	}

	return epl, err
}

// unitMarginal traces the axial ray through the rim of a unit-radius
// entrance pupil at epl.
func unitMarginal(sys *optic.System, wl, epl float64) (trace.Path, error) {
	return trace.TraceField(sys, wl, 0, 1, trace.Pupil{Diameter: 2, Location: epl})
}
