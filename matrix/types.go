// SPDX-License-Identifier: MIT
// Package: paraxial/matrix
//
// types.go: the ABCD matrix and ray vector types.

package matrix

import "fmt"

// ABCD is a 2×2 ray-transfer matrix acting on reduced ray vectors (y, n·u).
//
// The struct form keeps the value type copyable and comparable; a zero ABCD
// is the null matrix, not the identity.
type ABCD struct {
	A, B float64
	C, D float64
}

// Vec is a reduced paraxial ray state: height Y and optical angle W = n·u.
type Vec struct {
	Y float64
	W float64
}

// Identity is the transfer matrix of an empty surface range.
var Identity = ABCD{A: 1, B: 0, C: 0, D: 1}

// String implements fmt.Stringer for debugging output.
func (m ABCD) String() string {
	return fmt.Sprintf("[[%g %g] [%g %g]]", m.A, m.B, m.C, m.D)
}
