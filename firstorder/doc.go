// SPDX-License-Identifier: MIT

// Package firstorder computes the first-order (Gaussian) properties of an
// optic.System: focal lengths, cardinal points, pupils, F-number and the
// Lagrange invariant.
//
// 🚀 Usage
//
//	sys, _ := samples.CookeTriplet()
//	a, _ := firstorder.New(sys)
//	f2, _ := a.BackFocalLength()   // ≈ 50
//	s, _ := a.Summary()            // every quantity at once
//
// 📐 Reference frames
//
// Object-side positions (F1, P1, N1, P1Anti, N1Anti, EPL) are measured from
// the vertex of surface 1; image-side positions (F2, P2, N2, P2Anti, N2Anti,
// XPL) from the image surface. Focal lengths are signed distances from a
// principal plane to its focal point, so f1 < 0 < f2 for a positive lens in
// air.
//
// With M = [[A, B], [C, D]] the reduced system matrix from surface 1 to the
// image surface, n the object-space index and n' the image-space index:
//
//	f1 = n/C        F1 = n·D/C      P1 = F1 − f1    N1 = F1 + f2
//	f2 = −n'/C      F2 = −n'·A/C    P2 = F2 − f2    N2 = F2 + f1
//
// The anti-principal planes (unit magnification −1) and anti-nodal points
// (unit angular magnification −1) mirror them across the focal points.
//
// ⚠️ Afocal systems
//
// A system whose power is zero to within trace.AfocalTolerance has its focal
// points at infinity. Every query that depends on them, FNO included,
// returns ErrAfocal. Pupil queries keep working.
//
// 🧪 Reference data
//
// testdata/reference.json holds 19 published prescriptions with 18 values
// each. Only Edmund_49_847 and CookeTriplet ship in package samples, so the
// other 17 rows are skipped by the tests. Both bundled prescriptions carry
// values fitted to their published data (see package samples), which makes
// their f1, f2 and F2 agreement partly circular.
//
// 🔒 Concurrency
//
// An Analyzer holds an immutable system and a wavelength; every query is a
// pure computation and may be called from any number of goroutines.
package firstorder
