// SPDX-License-Identifier: MIT
// Package: paraxial/optic
//
// types.go: field, aperture and wavelength specifications.

package optic

import (
	"fmt"

	"github.com/katalvlaran/paraxial/material"
)

// FieldType selects how field coordinates are interpreted.
type FieldType int

const (
	// FieldAngle interprets field values as object-space angles in degrees.
	FieldAngle FieldType = iota

	// FieldObjectHeight interprets field values as object heights in lens units.
	// It requires a finite object distance for any non-axial field.
	FieldObjectHeight
)

// String implements fmt.Stringer.
func (f FieldType) String() string {
	switch f {
	case FieldAngle:
		return "angle"
	case FieldObjectHeight:
		return "object_height"
	default:
		return fmt.Sprintf("FieldType(%d)", int(f))
	}
}

// ApertureType selects how Aperture.Value is turned into an entrance pupil.
type ApertureType int

const (
	// ApertureNone is the zero value; resolving it fails.
	ApertureNone ApertureType = iota

	// EntrancePupilDiameter: Value is the EPD in lens units.
	EntrancePupilDiameter

	// ObjectSpaceNA: Value is n·sin(u) of the object-space marginal ray.
	ObjectSpaceNA

	// ImageSpaceNA: Value is n'·u' of the image-space marginal ray.
	ImageSpaceNA

	// ImageFNumber: Value is the image-space F-number.
	ImageFNumber

	// FloatByStopSize: Value is the stop diameter; zero means "use the stop
	// surface's SemiDiameter".
	FloatByStopSize
)

// String implements fmt.Stringer.
func (a ApertureType) String() string {
	switch a {
	case ApertureNone:
		return "none"
	case EntrancePupilDiameter:
		return "entrance_pupil_diameter"
	case ObjectSpaceNA:
		return "object_space_NA"
	case ImageSpaceNA:
		return "image_space_NA"
	case ImageFNumber:
		return "image_FNO"
	case FloatByStopSize:
		return "float_by_stop_size"
	default:
		return fmt.Sprintf("ApertureType(%d)", int(a))
	}
}

// Aperture is a tagged aperture specification.
type Aperture struct {
	Type  ApertureType
	Value float64
}

// Wavelength is a wavelength in micrometres with its primary flag.
type Wavelength struct {
	Value   float64
	Primary bool
}

// SurfaceSpec is one row of a lens prescription, the input to New.
//
// Radius 0 or ±Inf means flat. Thickness is the axial distance to the next
// surface; only the object row may use +Inf. A nil Medium means air.
type SurfaceSpec struct {
	Radius       float64
	Thickness    float64
	Medium       material.Medium
	IsStop       bool
	SemiDiameter float64
}

// Surface is a resolved surface of a System.
type Surface struct {
	// Z is the vertex position; −Inf for an object at infinity.
	Z float64

	// Curvature is 1/R, zero for flat surfaces.
	Curvature float64

	// Medium fills the space after the surface.
	Medium material.Medium

	// SemiDiameter is the physical clear semi-aperture, 0 when unset.
	SemiDiameter float64

	// IsStop marks the aperture stop.
	IsStop bool
}

// Index returns the refractive index after the surface at wavelength wl.
func (s Surface) Index(wl float64) float64 {
	return s.Medium.Index(wl)
}
