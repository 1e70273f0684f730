// SPDX-License-Identifier: MIT

// Package optic describes a rotationally symmetric optical system as an
// immutable snapshot: an ordered surface sequence plus the field, wavelength
// and aperture specifications every first-order analysis needs.
//
// 🚀 Model
//
//	index 0      object surface (may sit at z = −∞)
//	index 1..k   refracting surfaces, surface 1 at z = 0
//	index N−1    image surface
//
// Each surface carries its vertex position, curvature, the medium that
// follows it, an optional semi-diameter and the stop flag. Light travels
// towards +z.
//
// ⚙️ Usage:
//
//	sys, err := optic.New([]optic.SurfaceSpec{
//	    {Thickness: math.Inf(1)},                          // object at infinity
//	    {Radius: 50, Thickness: 5, Medium: glass, IsStop: true},
//	    {Radius: -50, Thickness: 48},
//	    {},                                                // image
//	},
//	    optic.WithAperture(optic.EntrancePupilDiameter, 10),
//	    optic.WithFields(optic.FieldAngle, 0, 5, 10),
//	    optic.WithWavelengths(optic.Wavelength{Value: 0.55, Primary: true}),
//	)
//
// A *System never changes after New returns. System.With derives a modified
// copy (for example a different object position), so one snapshot can be
// shared by any number of concurrent analyses.
//
// Errors:
//
// Every failure in this module satisfies errors.Is(err, ErrInvalidConfiguration).
// Packages refine it with their own sentinels (ErrNoStop, trace.ErrObjectAtInfinity,
// firstorder.ErrAfocal, ...), each built with fmt.Errorf("%w: ...").
package optic
