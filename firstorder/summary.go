// SPDX-License-Identifier: MIT
// Package: paraxial/firstorder
//
// summary.go: every first-order quantity in one pass.

package firstorder

import "github.com/katalvlaran/paraxial/trace"

// FirstOrder bundles every first-order quantity of a system. Field names
// follow the conventional symbols; see the package documentation for the
// reference frames.
type FirstOrder struct {
	F1, F2             float64 // focal points
	FrontFocalLength   float64 // f1
	BackFocalLength    float64 // f2
	P1, P2             float64 // principal planes
	P1Anti, P2Anti     float64
	N1, N2             float64 // nodal points
	N1Anti, N2Anti     float64
	EPL, EPD, XPL, XPD float64
	FNO                float64 // f2/EPD
	WorkingFNO         float64 // 1/(2·n'·|u'|)
	Invariant          float64
}

// Summary computes every quantity with a single marginal and chief trace.
// It fails on the first quantity that cannot be computed, so afocal systems
// return ErrAfocal.
func (a *Analyzer) Summary() (FirstOrder, error) {
	c, err := a.cardinal()
	if err != nil {
		return FirstOrder{}, err
	}
	pupil, err := a.Pupil()
	if err != nil {
		return FirstOrder{}, err
	}
	xpl, err := a.XPL()
	if err != nil {
		return FirstOrder{}, err
	}
	marginal, err := trace.TraceField(a.sys, a.wl, 0, 1, pupil.Pupil())
	if err != nil {
		return FirstOrder{}, err
	}
	chief, err := trace.TraceField(a.sys, a.wl, 1, 0, pupil.Pupil())
	if err != nil {
		return FirstOrder{}, err
	}
	inv, err := trace.Invariant(marginal, chief, 1)
	if err != nil {
		return FirstOrder{}, err
	}

	working, err := workingFNO(marginal)
	if err != nil {
		return FirstOrder{}, err
	}

	return FirstOrder{
		F1:               c.f1Point,
		F2:               c.f2Point,
		FrontFocalLength: c.f1,
		BackFocalLength:  c.f2,
		P1:               c.f1Point - c.f1,
		P2:               c.f2Point - c.f2,
		P1Anti:           c.f1Point + c.f1,
		P2Anti:           c.f2Point + c.f2,
		N1:               c.f1Point + c.f2,
		N2:               c.f2Point + c.f1,
		N1Anti:           c.f1Point - c.f2,
		N2Anti:           c.f2Point - c.f1,
		EPL:              pupil.Location,
		EPD:              pupil.Diameter,
		XPL:              xpl,
		XPD:              exitDiameter(marginal, xpl),
		FNO:              c.f2 / pupil.Diameter,
		WorkingFNO:       working,
		Invariant:        inv,
	}, nil
}
