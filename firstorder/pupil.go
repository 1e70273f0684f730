// SPDX-License-Identifier: MIT
// Package: paraxial/firstorder
//
// pupil.go: pupil queries, F-numbers and the Lagrange invariant.

package firstorder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/aperture"
	"github.com/katalvlaran/paraxial/numeric"
	"github.com/katalvlaran/paraxial/trace"
)

// EPL returns the entrance pupil location relative to surface 1.
func (a *Analyzer) EPL() (float64, error) {
	return trace.EntrancePupilLocation(a.sys, a.wl)
}

// EPD returns the entrance pupil diameter resolved from the aperture
// specification.
func (a *Analyzer) EPD() (float64, error) {
	return aperture.Diameter(a.sys, a.wl)
}

// XPL returns the exit pupil location relative to the image surface.
func (a *Analyzer) XPL() (float64, error) {
	return trace.ExitPupilLocation(a.sys, a.wl)
}

// XPD returns the exit pupil diameter: twice the marginal ray height in the
// exit pupil plane.
func (a *Analyzer) XPD() (float64, error) {
	xpl, err := a.XPL()
	if err != nil {
		return 0, err
	}
	m, err := a.MarginalRay()
	if err != nil {
		return 0, err
	}

	return exitDiameter(m, xpl), nil
}

func exitDiameter(marginal trace.Path, xpl float64) float64 {
	r := marginal.Last()
	return 2 * math.Abs(r.Y+r.U*xpl)
}

// FNO returns the F-number f2/EPD. It depends only on the system's power
// and the resolved pupil, so it is the same for every object distance.
//
// Errors: ErrAfocal, plus those of EPD.
func (a *Analyzer) FNO() (float64, error) {
	f2, err := a.BackFocalLength()
	if err != nil {
		return 0, err
	}
	epd, err := a.EPD()
	if err != nil {
		return 0, err
	}

	return f2 / epd, nil
}

// WorkingFNO returns the working F-number 1/(2·n'·|u'|) of the marginal ray
// in image space. For an object at infinity it equals |FNO|.
//
// Errors: ErrImageAtInfinity when the image-space marginal ray is parallel
// to the axis (afocal system, or object in the front focal plane), plus
// those of MarginalRay.
func (a *Analyzer) WorkingFNO() (float64, error) {
	m, err := a.MarginalRay()
	if err != nil {
		return 0, err
	}

	return workingFNO(m)
}

func workingFNO(marginal trace.Path) (float64, error) {
	w := math.Abs(marginal.Last().Reduced())
	if numeric.IsZero(w) {
		return 0, ErrImageAtInfinity
	}

	return 1 / (2 * w), nil
}

// Invariant returns the Lagrange invariant evaluated at surface 1.
func (a *Analyzer) Invariant() (float64, error) {
	return a.InvariantAt(1)
}

// InvariantAt returns the Lagrange invariant n·(y_chief·u_marginal −
// y_marginal·u_chief) at surface k, 1 ≤ k ≤ image index.
//
// Errors: trace.ErrSurfaceRange, plus those of MarginalRay and ChiefRay.
func (a *Analyzer) InvariantAt(k int) (float64, error) {
	if k < 1 || k > a.sys.ImageIndex() {
		return 0, fmt.Errorf("%w: surface %d", trace.ErrSurfaceRange, k)
	}
	m, err := a.MarginalRay()
	if err != nil {
		return 0, err
	}
	c, err := a.ChiefRay()
	if err != nil {
		return 0, err
	}

	return trace.Invariant(m, c, k)
}
