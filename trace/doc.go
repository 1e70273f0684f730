// SPDX-License-Identifier: MIT

// Package trace propagates paraxial rays through an optic.System.
//
// 🚀 The recurrence
//
// At a surface of curvature c between indices n (before) and n' (after):
//
//	u' = (n·u − y·c·(n' − n)) / n'     (refraction, height unchanged)
//
// and across a gap of axial length t:
//
//	y_next = y + t·u'                  (transfer, angle unchanged)
//
// A ray entering from an object at infinity has no finite first gap; it is
// specified directly at the first traced surface by passing z0 = −Inf.
//
// ✨ What else lives here:
//   - SystemMatrix: the ABCD matrix of a surface range, rebuilt from two
//     traced rays rather than by multiplying factors.
//   - EntrancePupilLocation / ExitPupilLocation: images of the stop.
//   - GetObjectPosition: object point for a field height and pupil target.
//   - TraceField: seed and trace a ray by normalized field (Hy) and pupil (Py)
//     coordinates, the way marginal and chief rays are defined.
//   - Invariant: the Lagrange invariant of two paths at one surface.
//
// Everything is a pure function of its arguments; nothing is cached.
package trace
