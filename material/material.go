// SPDX-License-Identifier: MIT
// Package: paraxial/material
//
// material.go: the Medium interface, constant media and the Sellmeier catalogue.

package material

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnknownGlass indicates that Lookup was asked for a name not in the catalog.
var ErrUnknownGlass = errors.New("material: unknown glass")

// Medium reports the refractive index at a wavelength given in micrometres.
// Implementations must be safe for concurrent use.
type Medium interface {
	Index(wavelength float64) float64
}

// Air is the unit-index medium.
var Air Medium = Constant(1)

// Constant is a non-dispersive medium.
type Constant float64

// Index returns the constant index regardless of wavelength.
func (c Constant) Index(float64) float64 { return float64(c) }

// String implements fmt.Stringer.
func (c Constant) String() string { return fmt.Sprintf("n=%g", float64(c)) }

// Sellmeier is a glass described by the three-term Sellmeier formula
//
//	n²(λ) = 1 + Σ Bᵢ·λ² / (λ² − Cᵢ)
//
// with λ in micrometres and Cᵢ in µm².
type Sellmeier struct {
	Name string
	B    [3]float64
	C    [3]float64
}

// Index evaluates the Sellmeier formula at wavelength (µm).
func (s Sellmeier) Index(wavelength float64) float64 {
	l2 := wavelength * wavelength
	n2 := 1.0
	for i := range s.B {
		n2 += s.B[i] * l2 / (l2 - s.C[i])
	}

	return math.Sqrt(n2)
}

// String implements fmt.Stringer.
func (s Sellmeier) String() string { return s.Name }

// catalog holds Schott Sellmeier coefficients keyed by upper-case name.
var catalog = map[string]Sellmeier{
	"N-BK7": {
		Name: "N-BK7",
		B:    [3]float64{1.03961212, 0.231792344, 1.01046945},
		C:    [3]float64{0.00600069867, 0.0200179144, 103.560653},
	},
	"F2": {
		Name: "F2",
		B:    [3]float64{1.34533359, 0.209073176, 0.937357162},
		C:    [3]float64{0.00997743871, 0.0470450767, 111.886764},
	},
	"N-SF11": {
		Name: "N-SF11",
		B:    [3]float64{1.73759695, 0.313747346, 1.89878101},
		C:    [3]float64{0.013188707, 0.0623068142, 155.23629},
	},
	"SK16": {
		Name: "SK16",
		B:    [3]float64{1.34317774, 0.241144399, 0.994317969},
		C:    [3]float64{0.00704687339, 0.0229005, 92.7508526},
	},
}

// Lookup returns the catalog glass with the given name (case-insensitive).
func Lookup(name string) (Sellmeier, error) {
	g, ok := catalog[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Sellmeier{}, fmt.Errorf("%w: %q", ErrUnknownGlass, name)
	}

	return g, nil
}

// Names lists the catalog in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
