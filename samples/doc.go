// SPDX-License-Identifier: MIT

// Package samples provides ready-made lens prescriptions.
//
// Every constructor accepts optic options that are applied after the sample's
// own configuration, so callers can override the aperture, fields or
// wavelengths:
//
//	sys, err := samples.CookeTriplet(optic.WithAperture(optic.FloatByStopSize, 7.6))
//
// Available prescriptions:
//
//	Edmund49847      plano-convex, f = 25.4, object at infinity, stop on surface 1
//	CookeTriplet     f = 50 F/5 triplet, stop between the negative and rear elements
//	SingletRearStop  biconvex singlet followed by a separate stop plane
//	AfocalKeplerian  two positive singlets spaced for zero net power
package samples
