// SPDX-License-Identifier: MIT
// Package: paraxial/matrix
//
// abcd.go: constructors and algebra of reduced ABCD matrices.

package matrix

import (
	"github.com/katalvlaran/paraxial/numeric"
)

// Transfer returns the matrix of a homogeneous gap of axial length t in a
// medium of index n: y' = y + (t/n)·ω, ω' = ω.
//
// Errors: ErrNaNInf if t or n is not finite, or n == 0.
func Transfer(t, n float64) (ABCD, error) {
	if !numeric.IsFinite(t) || !numeric.IsFinite(n) || n == 0 {
		return ABCD{}, matrixErrorf(opTransfer, ErrNaNInf)
	}

	return ABCD{A: 1, B: t / n, C: 0, D: 1}, nil
}

// Refraction returns the matrix of a refracting surface of curvature c
// between media n (before) and n2 (after): ω' = ω − c·(n2 − n)·y.
//
// Errors: ErrNaNInf for non-finite arguments.
func Refraction(c, n, n2 float64) (ABCD, error) {
	if !numeric.IsFinite(c) || !numeric.IsFinite(n) || !numeric.IsFinite(n2) {
		return ABCD{}, matrixErrorf(opRefract, ErrNaNInf)
	}

	return ABCD{A: 1, B: 0, C: -c * (n2 - n), D: 1}, nil
}

// Mul returns the product m·o, i.e. o applied first and m second.
func (m ABCD) Mul(o ABCD) ABCD {
	return ABCD{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

// Chain multiplies factors in the order light meets them: Chain(m1, m2, m3)
// is m3·m2·m1. An empty chain is Identity.
func Chain(ms ...ABCD) ABCD {
	out := Identity
	for _, m := range ms {
		out = m.Mul(out)
	}

	return out
}

// Det returns AD − BC.
func (m ABCD) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Power returns the optical power −C.
func (m ABCD) Power() float64 {
	return -m.C
}

// IsAfocal reports whether the matrix has zero power.
func (m ABCD) IsAfocal() bool {
	return m.C == 0
}

// Inverse returns m⁻¹.
//
// Errors: ErrSingular when det == 0.
func (m ABCD) Inverse() (ABCD, error) {
	det := m.Det()
	if det == 0 {
		return ABCD{}, matrixErrorf(opInverse, ErrSingular)
	}

	return ABCD{A: m.D / det, B: -m.B / det, C: -m.C / det, D: m.A / det}, nil
}

// Apply maps the reduced ray v through m.
func (m ABCD) Apply(v Vec) Vec {
	return Vec{Y: m.A*v.Y + m.B*v.W, W: m.C*v.Y + m.D*v.W}
}

// FromRays reconstructs the matrix that maps in1→out1 and in2→out2.
// Implementation:
//   - Stage 1: stack the inputs as columns of In and the outputs of Out.
//   - Stage 2: invert In (fails when the rays are collinear).
//   - Stage 3: return Out·In⁻¹.
//
// Errors: ErrDependentRays if in1 and in2 are collinear; ErrNaNInf for
// non-finite ray components.
func FromRays(in1, out1, in2, out2 Vec) (ABCD, error) {
	for _, v := range [...]Vec{in1, out1, in2, out2} {
		if !numeric.IsFinite(v.Y) || !numeric.IsFinite(v.W) {
			return ABCD{}, matrixErrorf(opFromRays, ErrNaNInf)
		}
	}
	in := ABCD{A: in1.Y, B: in2.Y, C: in1.W, D: in2.W}
	inv, err := in.Inverse()
	if err != nil {
		return ABCD{}, matrixErrorf(opFromRays, ErrDependentRays)
	}
	out := ABCD{A: out1.Y, B: out2.Y, C: out1.W, D: out2.W}

	return out.Mul(inv), nil
}
