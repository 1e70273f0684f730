// SPDX-License-Identifier: MIT

// Package paraxial is a first-order (Gaussian) optics toolkit: describe a
// rotationally symmetric lens as a sequence of surfaces, then ask for its
// focal lengths, cardinal points, pupils, F-number and Lagrange invariant.
//
// 🚀 What is paraxial?
//
//	A small, dependency-light library that brings together:
//		• Surface sequences: radii, thicknesses, glasses, stop flag
//		• Materials: constant index, Sellmeier catalog glasses, melt tables
//		• Ray tracing: the paraxial refraction/transfer recurrence
//		• ABCD matrices: reduced system matrices and their algebra
//		• Aperture solving: EPD, object/image NA, F-number, stop size
//		• Analysis: f1, f2, F1, F2, P1, P2, N1, N2 (+ anti planes),
//		  EPL, EPD, XPL, XPD, FNO, invariant
//
// ✨ Why paraxial?
//
//   - Immutable systems – derive variants with System.With, share freely
//     between goroutines
//   - Explicit errors – every failure wraps optic.ErrInvalidConfiguration
//   - Closed forms – every query is a trace or two, no iteration
//
// Everything is organized under these subpackages:
//
//	numeric/    — float helpers shared by the other packages
//	matrix/     — 2×2 reduced ABCD matrices
//	material/   — refractive index models and the glass catalog
//	optic/      — the immutable System and its options
//	trace/      — paraxial ray trace, system matrices, pupil locations
//	aperture/   — aperture specification → entrance pupil diameter
//	firstorder/ — the Analyzer and its first-order queries
//	samples/    — bundled prescriptions
//	cmd/paraxial — command-line report
//
// Quick example:
//
//	sys, _ := samples.CookeTriplet()
//	a, _ := firstorder.New(sys)
//	f2, _ := a.BackFocalLength() // 49.9998
//
//	go get github.com/katalvlaran/paraxial
package paraxial
