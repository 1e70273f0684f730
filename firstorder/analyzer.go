// SPDX-License-Identifier: MIT
// Package: paraxial/firstorder
//
// analyzer.go: the Analyzer, its system matrix and resolved pupil.

package firstorder

import (
	"fmt"

	"github.com/katalvlaran/paraxial/aperture"
	"github.com/katalvlaran/paraxial/matrix"
	"github.com/katalvlaran/paraxial/optic"
	"github.com/katalvlaran/paraxial/trace"
)

// Analyzer answers first-order queries about one system at one wavelength.
// It caches nothing; the zero value is not usable, construct with New.
type Analyzer struct {
	sys *optic.System
	wl  float64
}

// New returns an Analyzer for sys.
//
// Errors: ErrNilSystem.
func New(sys *optic.System, opts ...Option) (*Analyzer, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}
	cfg := config{wavelength: sys.PrimaryWavelength()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Analyzer{sys: sys, wl: cfg.wavelength}, nil
}

// System returns the analyzed system.
func (a *Analyzer) System() *optic.System { return a.sys }

// Wavelength returns the wavelength queries are evaluated at, in µm.
func (a *Analyzer) Wavelength() float64 { return a.wl }

// SystemMatrix returns the reduced ABCD matrix from surface 1 to the image
// surface. It is defined for afocal systems too.
func (a *Analyzer) SystemMatrix() (matrix.ABCD, error) {
	return trace.SystemMatrix(a.sys, a.wl, 1, a.sys.ImageIndex())
}

// focal returns the system matrix, rejecting afocal systems.
func (a *Analyzer) focal() (matrix.ABCD, error) {
	m, err := a.SystemMatrix()
	if err != nil {
		return matrix.ABCD{}, err
	}
	if trace.IsAfocal(a.sys, m) {
		return matrix.ABCD{}, fmt.Errorf("%w: C=%g", ErrAfocal, m.C)
	}

	return m, nil
}

// indices returns the object-space and image-space refractive indices.
func (a *Analyzer) indices() (n, n2 float64) {
	return a.sys.Index(0, a.wl), a.sys.Index(a.sys.ImageIndex(), a.wl)
}

// Pupil returns the resolved entrance pupil.
func (a *Analyzer) Pupil() (aperture.Result, error) {
	return aperture.Resolve(a.sys, a.wl)
}

// MarginalRay traces the ray from the axial object point through the rim of
// the entrance pupil.
func (a *Analyzer) MarginalRay() (trace.Path, error) {
	return a.field(0, 1)
}

// ChiefRay traces the ray from the edge of the field through the centre of
// the entrance pupil.
//
// Errors: trace.ErrObjectAtInfinity for an object-height field with the
// object at infinity, plus those of Pupil.
func (a *Analyzer) ChiefRay() (trace.Path, error) {
	return a.field(1, 0)
}

func (a *Analyzer) field(hy, py float64) (trace.Path, error) {
	p, err := a.Pupil()
	if err != nil {
		return trace.Path{}, err
	}

	return trace.TraceField(a.sys, a.wl, hy, py, p.Pupil())
}
