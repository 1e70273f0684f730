// SPDX-License-Identifier: MIT
// Package: paraxial/optic
//
// config.go: resolved configuration and deterministic defaults.
//
// Design:
//   • systemConfig is the single source of truth for everything except the
//     surface rows themselves.
//   • Options apply in order; later options override earlier ones.
//
// Defaults:
//   • fieldType   = FieldAngle
//   • fields      = {0}            (on-axis only)
//   • wavelengths = {0.55 µm, primary}
//   • aperture    = ApertureNone   (resolving the pupil fails until set)
//   • objectZ     = unset          (object row thickness decides)

package optic

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultWavelength is the primary wavelength in µm when none is configured.
	DefaultWavelength = 0.55
)

// systemConfig aggregates all non-geometric knobs. It is copied by value when
// a System derives a sibling, so slices are never shared after mutation.
type systemConfig struct {
	fieldType   FieldType
	fields      []float64
	wavelengths []Wavelength
	aperture    Aperture

	// objectZ overrides the object row thickness when set.
	objectZ    float64
	hasObjectZ bool
}

// newSystemConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newSystemConfig(opts ...Option) systemConfig {
	cfg := systemConfig{
		fieldType:   FieldAngle,
		fields:      []float64{0},
		wavelengths: []Wavelength{{Value: DefaultWavelength, Primary: true}},
	}
	cfg.apply(opts...)

	return cfg
}

func (c *systemConfig) apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// clone returns a deep copy so that derived systems never alias slices.
func (c systemConfig) clone() systemConfig {
	out := c
	out.fields = append([]float64(nil), c.fields...)
	out.wavelengths = append([]Wavelength(nil), c.wavelengths...)

	return out
}
