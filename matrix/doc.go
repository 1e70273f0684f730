// SPDX-License-Identifier: MIT

// Package matrix provides the 2×2 ray-transfer (ABCD) matrix used by the
// paraxial engine.
//
// A paraxial ray is the reduced state vector (y, n·u): height above the axis
// and optical direction cosine. Every refraction and every homogeneous gap
// acts on that vector linearly, so a whole chain of surfaces collapses into
//
//	| y' |   | A  B | | y  |
//	|    | = |      | |    |
//	| ω' |   | C  D | | ω  |     with ω = n·u
//
// and det = AD − BC = 1 for any lossless chain. C is the negated optical
// power; C == 0 marks an afocal system.
//
// What lives here:
//   - Elementary factors: Refraction, Transfer, Identity.
//   - Composition and inversion: Mul, Inverse, Det.
//   - FromRays: reconstruct a matrix from two traced rays (Out · In⁻¹), which
//     is how the tracer builds system matrices without multiplying factors.
//
// Errors:
//   - ErrSingular  — inverse requested for det == 0.
//   - ErrNaNInf    — a non-finite entry where finite values are required.
//   - ErrDependentRays — the two input rays of FromRays are collinear.
//
// Complexity: every operation is O(1).
package matrix
