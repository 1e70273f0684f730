// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// invariant.go: the Lagrange invariant of two paths.

package trace

import "fmt"

// Invariant returns the Lagrange invariant n·(y_b·u_a − y_a·u_b) of paths a
// (marginal) and b (chief) at surface i, using angles after refraction and
// the index after the surface. It is the same at every surface of a lossless
// system.
//
// Errors: ErrSurfaceRange if either path did not traverse surface i.
func Invariant(a, b Path, i int) (float64, error) {
	ra, okA := a.At(i)
	rb, okB := b.At(i)
	if !okA || !okB {
		return 0, fmt.Errorf("%w: surface %d not traced", ErrSurfaceRange, i)
	}

	return ra.N * (rb.Y*ra.U - ra.Y*rb.U), nil
}
