// SPDX-License-Identifier: MIT
// Package: paraxial/optic
//
// options.go: functional options for New and System.With.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (NaN values, negative diameters, unknown enum tags). Those are
//     programmer errors, not configuration problems.
//   • Structural problems of a prescription are reported by New as errors.

package optic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/numeric"
)

// Option customizes a System before its surfaces are resolved.
type Option func(*systemConfig)

// WithFields sets the field type and the field coordinates. Coordinates are
// degrees for FieldAngle and lens units for FieldObjectHeight.
// Panics on an unknown field type or a non-finite coordinate.
func WithFields(ft FieldType, ys ...float64) Option {
	mustFieldType("WithFields", ft)
	for _, y := range ys {
		if !numeric.IsFinite(y) {
			panic(fmt.Sprintf("optic: WithFields: non-finite field %v", y))
		}
	}
	fields := append([]float64(nil), ys...)
	if len(fields) == 0 {
		fields = []float64{0}
	}

	return func(c *systemConfig) {
		c.fieldType = ft
		c.fields = fields
	}
}

// WithFieldType switches the interpretation of the existing field values.
// Panics on an unknown field type.
func WithFieldType(ft FieldType) Option {
	mustFieldType("WithFieldType", ft)

	return func(c *systemConfig) {
		c.fieldType = ft
	}
}

// WithWavelengths replaces the wavelength list. When no entry is flagged as
// primary the first one is promoted. Panics on an empty list or a
// non-positive wavelength.
func WithWavelengths(ws ...Wavelength) Option {
	if len(ws) == 0 {
		panic("optic: WithWavelengths: empty wavelength list")
	}
	for _, w := range ws {
		if !(w.Value > 0) || numeric.IsInf(w.Value) {
			panic(fmt.Sprintf("optic: WithWavelengths: bad wavelength %v", w.Value))
		}
	}
	list := append([]Wavelength(nil), ws...)

	return func(c *systemConfig) {
		c.wavelengths = list
	}
}

// WithAperture sets the aperture specification.
// Panics on an unknown type or a NaN/negative/infinite value.
func WithAperture(typ ApertureType, value float64) Option {
	if typ < ApertureNone || typ > FloatByStopSize {
		panic(fmt.Sprintf("optic: WithAperture: unknown aperture type %d", int(typ)))
	}
	if !numeric.IsFinite(value) || value < 0 {
		panic(fmt.Sprintf("optic: WithAperture: bad value %v", value))
	}

	return func(c *systemConfig) {
		c.aperture = Aperture{Type: typ, Value: value}
	}
}

// WithObjectPosition moves the object surface to axial position z, which must
// lie before surface 1 (z < 0) or be −Inf for an object at infinity.
// Panics on NaN, +Inf or z ≥ 0.
func WithObjectPosition(z float64) Option {
	if math.IsNaN(z) || math.IsInf(z, 1) || z >= 0 {
		panic(fmt.Sprintf("optic: WithObjectPosition: z must be < 0 or -Inf, got %v", z))
	}

	return func(c *systemConfig) {
		c.objectZ = z
		c.hasObjectZ = true
	}
}

func mustFieldType(op string, ft FieldType) {
	if ft != FieldAngle && ft != FieldObjectHeight {
		panic(fmt.Sprintf("optic: %s: unknown field type %d", op, int(ft)))
	}
}
