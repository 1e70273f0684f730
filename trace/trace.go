// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// trace.go: the refraction and transfer recurrence.

package trace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paraxial/optic"
)

// Refract applies the paraxial refraction equation at a surface of
// curvature c between indices n and n2 and returns the new angle.
func Refract(y, u, c, n, n2 float64) float64 {
	return (n*u - y*c*(n2-n)) / n2
}

// Transfer returns the height after travelling axial distance t at angle u.
func Transfer(y, u, t float64) float64 {
	return y + t*u
}

// Trace propagates a ray from the plane z0 through every surface from 1 to
// the image. With z0 = −Inf the ray (y, u) is taken as given at surface 1.
func Trace(sys *optic.System, wl, y, u, z0 float64) (Path, error) {
	return TraceRange(sys, wl, y, u, z0, 1, sys.ImageIndex())
}

// TraceRange propagates a ray through surfaces first..last inclusive.
// Implementation:
//   - Stage 1: validate the range (1 ≤ first ≤ last ≤ image).
//   - Stage 2: take the incoming index from the medium after surface first−1.
//   - Stage 3: for each surface transfer from the previous plane, refract,
//     record the state.
//
// The starting plane z0 may be any finite position before surface first, or
// −Inf meaning the ray state is already given at surface first.
//
// Errors: ErrSurfaceRange on a bad range.
// Complexity: O(last−first+1).
func TraceRange(sys *optic.System, wl, y, u, z0 float64, first, last int) (Path, error) {
	if err := checkRange(sys, first, last); err != nil {
		return Path{}, err
	}

	zPrev := z0
	if math.IsInf(z0, -1) {
		zPrev = sys.Z(first)
	}
	n := sys.Index(first-1, wl)

	rays := make([]Ray, 0, last-first+1)
	for i := first; i <= last; i++ {
		s, _ := sys.Surface(i)
		y = Transfer(y, u, s.Z-zPrev)
		n2 := s.Index(wl)
		u = Refract(y, u, s.Curvature, n, n2)
		rays = append(rays, Ray{Y: y, U: u, N: n2})
		zPrev = s.Z
		n = n2
	}

	return Path{First: first, Rays: rays}, nil
}

func checkRange(sys *optic.System, first, last int) error {
	if first < 1 || last < first || last > sys.ImageIndex() {
		return fmt.Errorf("%w: [%d, %d] of %d surfaces", ErrSurfaceRange, first, last, sys.NumSurfaces())
	}

	return nil
}
