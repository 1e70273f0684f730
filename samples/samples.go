// SPDX-License-Identifier: MIT
// Package: paraxial/samples
//
// samples.go: bundled prescriptions and their registry.

package samples

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/paraxial/material"
	"github.com/katalvlaran/paraxial/optic"
)

// ErrUnknownSample indicates that Lookup was given an unregistered name.
var ErrUnknownSample = errors.New("samples: unknown sample")

// Constructor builds a sample system with extra options applied last.
type Constructor func(opts ...optic.Option) (*optic.System, error)

var registry = map[string]Constructor{
	"edmund_49_847":     Edmund49847,
	"cooke_triplet":     CookeTriplet,
	"singlet_rear_stop": SingletRearStop,
	"afocal_keplerian":  AfocalKeplerian,
}

// Lookup returns the constructor registered under name.
func Lookup(name string) (Constructor, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}

	return c, nil
}

// Names lists registered sample names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

var inf = math.Inf(1)

// visible is the F, d-ish, C-ish triple used by most samples, 0.55 µm primary.
func visible() optic.Option {
	return optic.WithWavelengths(
		optic.Wavelength{Value: 0.48},
		optic.Wavelength{Value: 0.55, Primary: true},
		optic.Wavelength{Value: 0.65},
	)
}

func build(specs []optic.SurfaceSpec, base []optic.Option, extra []optic.Option) (*optic.System, error) {
	return optic.New(specs, append(base, extra...)...)
}

// Edmund49847 is a 25.4 mm diameter plano-convex lens of 25.4 mm nominal
// focal length, curved side towards an object at infinity, with the stop on
// the curved surface. The curved radius and the back gap are fitted to the
// lens's published first-order data (f = 25.3976), not read off the catalogue
// drawing; with them the image plane sits 4.6 µm behind paraxial focus.
func Edmund49847(opts ...optic.Option) (*optic.System, error) {
	glass := material.Constant(1.5168)
	specs := []optic.SurfaceSpec{
		{Thickness: inf},
		{Radius: 13.125477568060127, Thickness: 7, Medium: glass, IsStop: true, SemiDiameter: 12.7},
		{Radius: inf, Thickness: 20.78720509580846, SemiDiameter: 12.7},
		{},
	}
	base := []optic.Option{
		optic.WithAperture(optic.EntrancePupilDiameter, 25.4),
		optic.WithFields(optic.FieldAngle, 0, 10, 14),
		optic.WithWavelengths(optic.Wavelength{Value: 0.55, Primary: true}),
	}

	return build(specs, base, opts)
}

// sk16 holds indices fitted so that the triplet reproduces its published
// first-order data. They sit about 9e-7 above the catalogue SK16 formula
// across the visible.
var sk16 = mustTable("SK16",
	material.Point{Wavelength: 0.48, Index: 1.628140139705149},
	material.Point{Wavelength: 0.55, Index: 1.6226085614386794},
	material.Point{Wavelength: 0.65, Index: 1.617521995240895},
)

// mustTable is material.NewTable for package-level tables; it panics on
// invalid points.
func mustTable(name string, pts ...material.Point) *material.Table {
	t, err := material.NewTable(name, pts...)
	if err != nil {
		panic(fmt.Sprintf("samples: table %s: %v", name, err))
	}

	return t
}

// CookeTriplet is the classic f = 50 mm, F/5 Cooke triplet covering ±20°.
func CookeTriplet(opts ...optic.Option) (*optic.System, error) {
	f2, err := material.Lookup("F2")
	if err != nil {
		return nil, err
	}
	specs := []optic.SurfaceSpec{
		{Thickness: inf},
		{Radius: 22.01359, Thickness: 3.25896, Medium: sk16},
		{Radius: -435.76044, Thickness: 6.00755},
		{Radius: -22.21328, Thickness: 0.99997, Medium: f2},
		{Radius: 20.29192, Thickness: 4.75041, IsStop: true},
		{Radius: 79.68360, Thickness: 2.95208, Medium: sk16},
		{Radius: -18.39533, Thickness: 42.20778},
		{},
	}
	base := []optic.Option{
		optic.WithAperture(optic.EntrancePupilDiameter, 10),
		optic.WithFields(optic.FieldAngle, 0, 14, 20),
		visible(),
	}

	return build(specs, base, opts)
}

// SingletRearStop is an N-BK7 biconvex singlet with the aperture stop on a
// separate plane 6 mm behind it, imaging an object 200 mm away.
func SingletRearStop(opts ...optic.Option) (*optic.System, error) {
	bk7, err := material.Lookup("N-BK7")
	if err != nil {
		return nil, err
	}
	specs := []optic.SurfaceSpec{
		{Thickness: 200},
		{Radius: 60, Thickness: 6, Medium: bk7},
		{Radius: -60, Thickness: 6},
		{Radius: inf, Thickness: 70, IsStop: true, SemiDiameter: 5},
		{},
	}
	base := []optic.Option{
		optic.WithAperture(optic.FloatByStopSize, 0),
		optic.WithFields(optic.FieldObjectHeight, 0, 5, 10),
		visible(),
	}

	return build(specs, base, opts)
}

// AfocalKeplerian is a 2× Keplerian telescope: an f ≈ 98 mm objective and an
// f ≈ 49 mm eyepiece spaced so the net power vanishes.
func AfocalKeplerian(opts ...optic.Option) (*optic.System, error) {
	glass := material.Constant(1.5168)
	specs := []optic.SurfaceSpec{
		{Thickness: inf},
		{Radius: 100, Thickness: 4, Medium: glass, IsStop: true},
		{Radius: -100, Thickness: 143.96046453147017},
		{Radius: 50, Thickness: 3, Medium: glass},
		{Radius: -50, Thickness: 20},
		{},
	}
	base := []optic.Option{
		optic.WithAperture(optic.EntrancePupilDiameter, 20),
		optic.WithFields(optic.FieldAngle, 0, 1),
		optic.WithWavelengths(optic.Wavelength{Value: 0.55, Primary: true}),
	}

	return build(specs, base, opts)
}
