// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// matrix.go: system matrices rebuilt from traced rays.

package trace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/matrix"
	"github.com/katalvlaran/paraxial/optic"
)

// SystemMatrix returns the ABCD matrix mapping the reduced ray (y, n·u) just
// before surface first to the state just after surface last.
//
// Two rays are traced, one with unit height and one with unit optical angle,
// and the matrix is reconstructed from their end states.
//
// Errors: ErrSurfaceRange, ErrDegenerate.
func SystemMatrix(sys *optic.System, wl float64, first, last int) (matrix.ABCD, error) {
	if err := checkRange(sys, first, last); err != nil {
		return matrix.ABCD{}, err
	}
	n, z := sys.Index(first-1, wl), sys.Z(first)

	height, err := TraceRange(sys, wl, 1, 0, z, first, last)
	if err != nil {
		return matrix.ABCD{}, err
	}
	slope, err := TraceRange(sys, wl, 0, 1/n, z, first, last)
	if err != nil {
		return matrix.ABCD{}, err
	}

	h, s := height.Last(), slope.Last()
	m, err := matrix.FromRays(
		matrix.Vec{Y: 1, W: 0}, matrix.Vec{Y: h.Y, W: h.Reduced()},
		matrix.Vec{Y: 0, W: 1}, matrix.Vec{Y: s.Y, W: s.Reduced()},
	)
	if err != nil {
		return matrix.ABCD{}, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}

	return m, nil
}

// AfocalTolerance bounds |power|·track length below which a system is
// treated as afocal: its focal length would exceed the track by more than
// 1e12.
const AfocalTolerance = 1e-12

// IsAfocal reports whether m, a matrix of sys, has effectively zero power.
// Thick-lens telescopes leave residual powers of order 1e-18 after rounding,
// so exact comparison is not enough.
func IsAfocal(sys *optic.System, m matrix.ABCD) bool {
	if m.IsAfocal() {
		return true
	}
	track := math.Max(math.Abs(sys.Z(sys.ImageIndex())-sys.Z(1)), 1)

	return math.Abs(m.C)*track <= AfocalTolerance
}
