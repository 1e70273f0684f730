// SPDX-License-Identifier: MIT
// Package: paraxial/optic
//
// system.go: the immutable System and its accessors.

package optic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/material"
	"github.com/katalvlaran/paraxial/numeric"
)

// minSurfaces is object + one refracting surface + image.
const minSurfaces = 3

// System is an immutable optical-system snapshot. All methods are safe for
// concurrent use.
type System struct {
	specs    []SurfaceSpec
	cfg      systemConfig
	surfaces []Surface
	stop     int // −1 when no stop is flagged
	primary  float64
}

// New resolves a prescription into a System.
// Implementation:
//   - Stage 1: apply options over the documented defaults.
//   - Stage 2: validate rows (count, radii, thicknesses, stop flags).
//   - Stage 3: accumulate vertex positions with surface 1 at z = 0.
//   - Stage 4: check every medium at every configured wavelength.
//
// Errors: ErrTooFewSurfaces, ErrBadRadius, ErrBadThickness, ErrMultipleStops,
// ErrStopOnObject, ErrMultiplePrimary, ErrBadIndex; all wrap
// ErrInvalidConfiguration.
func New(specs []SurfaceSpec, opts ...Option) (*System, error) {
	return build(append([]SurfaceSpec(nil), specs...), newSystemConfig(opts...))
}

// With returns a copy of s with opts applied on top of its configuration.
func (s *System) With(opts ...Option) (*System, error) {
	cfg := s.cfg.clone()
	cfg.apply(opts...)

	return build(s.specs, cfg)
}

func build(specs []SurfaceSpec, cfg systemConfig) (*System, error) {
	if len(specs) < minSurfaces {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSurfaces, len(specs))
	}

	primary, err := primaryWavelength(cfg.wavelengths)
	if err != nil {
		return nil, err
	}

	last := len(specs) - 1
	surfaces := make([]Surface, len(specs))
	stop := -1
	z := 0.0
	for i, sp := range specs {
		if math.IsNaN(sp.Radius) {
			return nil, fmt.Errorf("%w: surface %d", ErrBadRadius, i)
		}
		if sp.IsStop {
			if i == 0 {
				return nil, ErrStopOnObject
			}
			if stop >= 0 {
				return nil, fmt.Errorf("%w: surfaces %d and %d", ErrMultipleStops, stop, i)
			}
			stop = i
		}
		if i > 0 && i < last && !numeric.IsFinite(sp.Thickness) {
			return nil, fmt.Errorf("%w: surface %d thickness %v", ErrBadThickness, i, sp.Thickness)
		}

		medium := sp.Medium
		if medium == nil {
			medium = material.Air
		}
		surfaces[i] = Surface{
			Curvature:    curvature(sp.Radius),
			Medium:       medium,
			SemiDiameter: sp.SemiDiameter,
			IsStop:       sp.IsStop,
		}
		if i >= 1 {
			surfaces[i].Z = z
			z += sp.Thickness
		}
	}
	// The image surface sits in image space.
	surfaces[last].Medium = surfaces[last-1].Medium

	objZ, err := objectPosition(specs[0].Thickness, cfg)
	if err != nil {
		return nil, err
	}
	surfaces[0].Z = objZ

	for i := 0; i < last; i++ {
		for _, w := range cfg.wavelengths {
			n := surfaces[i].Index(w.Value)
			if !(n > 0) || numeric.IsInf(n) {
				return nil, fmt.Errorf("%w: surface %d at %g µm: %v", ErrBadIndex, i, w.Value, n)
			}
		}
	}

	return &System{
		specs:    specs,
		cfg:      cfg,
		surfaces: surfaces,
		stop:     stop,
		primary:  primary,
	}, nil
}

func curvature(r float64) float64 {
	if numeric.IsZero(r) || numeric.IsInf(r) {
		return 0
	}

	return 1 / r
}

func objectPosition(thickness float64, cfg systemConfig) (float64, error) {
	if cfg.hasObjectZ {
		return cfg.objectZ, nil
	}
	switch {
	case math.IsInf(thickness, 1):
		return math.Inf(-1), nil
	case math.IsNaN(thickness) || math.IsInf(thickness, -1) || thickness < 0:
		return 0, fmt.Errorf("%w: object distance %v", ErrBadThickness, thickness)
	}

	return -thickness, nil
}

func primaryWavelength(ws []Wavelength) (float64, error) {
	primary := math.NaN()
	for _, w := range ws {
		if !w.Primary {
			continue
		}
		if !math.IsNaN(primary) {
			return 0, ErrMultiplePrimary
		}
		primary = w.Value
	}
	if math.IsNaN(primary) {
		primary = ws[0].Value
	}

	return primary, nil
}

// NumSurfaces returns the number of surfaces including object and image.
func (s *System) NumSurfaces() int { return len(s.surfaces) }

// ImageIndex returns the index of the image surface.
func (s *System) ImageIndex() int { return len(s.surfaces) - 1 }

// Surface returns surface i.
//
// Errors: ErrSurfaceIndex when i is out of range.
func (s *System) Surface(i int) (Surface, error) {
	if i < 0 || i >= len(s.surfaces) {
		return Surface{}, fmt.Errorf("%w: %d of %d", ErrSurfaceIndex, i, len(s.surfaces))
	}

	return s.surfaces[i], nil
}

// Surfaces returns a copy of the resolved surface sequence.
func (s *System) Surfaces() []Surface {
	return append([]Surface(nil), s.surfaces...)
}

// Z returns the vertex position of surface i. It panics on a bad index, like
// a slice access; use Surface for checked access.
func (s *System) Z(i int) float64 { return s.surfaces[i].Z }

// Index returns the index of the medium after surface i at wavelength wl.
// Panics on a bad index.
func (s *System) Index(i int, wl float64) float64 { return s.surfaces[i].Index(wl) }

// ObjectAtInfinity reports whether the object surface sits at z = −∞.
func (s *System) ObjectAtInfinity() bool { return math.IsInf(s.surfaces[0].Z, -1) }

// StopIndex returns the index of the stop surface.
//
// Errors: ErrNoStop when no surface is flagged.
func (s *System) StopIndex() (int, error) {
	if s.stop < 0 {
		return 0, ErrNoStop
	}

	return s.stop, nil
}

// FieldType returns the configured field type.
func (s *System) FieldType() FieldType { return s.cfg.fieldType }

// Fields returns a copy of the field coordinates.
func (s *System) Fields() []float64 { return append([]float64(nil), s.cfg.fields...) }

// MaxField returns the largest absolute field coordinate.
func (s *System) MaxField() float64 {
	m := 0.0
	for _, y := range s.cfg.fields {
		m = math.Max(m, math.Abs(y))
	}

	return m
}

// Wavelengths returns a copy of the wavelength list.
func (s *System) Wavelengths() []Wavelength {
	return append([]Wavelength(nil), s.cfg.wavelengths...)
}

// PrimaryWavelength returns the primary wavelength in µm.
func (s *System) PrimaryWavelength() float64 { return s.primary }

// Aperture returns the aperture specification.
func (s *System) Aperture() Aperture { return s.cfg.aperture }
