// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// types.go: rays and traced paths.

package trace

// Ray is the paraxial state of a ray at one surface: height Y at the vertex
// plane, angle U after refraction and the index N of the medium it then
// travels in.
type Ray struct {
	Y float64
	U float64
	N float64
}

// Reduced returns the optical angle n·u.
func (r Ray) Reduced() float64 { return r.N * r.U }

// Path is the sequence of ray states produced by one trace; element k
// belongs to surface First+k.
type Path struct {
	First int
	Rays  []Ray
}

// Last returns the state at the final traced surface.
func (p Path) Last() Ray { return p.Rays[len(p.Rays)-1] }

// At returns the state at surface index i, and false if i was not traced.
func (p Path) At(i int) (Ray, bool) {
	k := i - p.First
	if k < 0 || k >= len(p.Rays) {
		return Ray{}, false
	}

	return p.Rays[k], true
}
