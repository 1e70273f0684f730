// SPDX-License-Identifier: MIT

// Package aperture turns an optic.Aperture specification into an entrance
// pupil diameter.
//
// Supported modes:
//
//	EntrancePupilDiameter  the value is the EPD
//	ObjectSpaceNA          n₀·sin(u) of the object-space marginal ray (finite objects)
//	ImageSpaceNA           n'·u' of the image-space marginal ray
//	ImageFNumber           f2/EPD for an object at infinity, 1/(2·NA) otherwise
//	FloatByStopSize        the pupil just filled by a stop of given diameter
//
// Paraxial rays are linear in their starting height, so every indirect mode
// is solved by tracing one marginal ray aimed at a unit-radius entrance
// pupil and scaling. No iteration is involved.
package aperture
