// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped by matrixErrorf)
// and tests check them via errors.Is. Nothing in this package panics on
// user-supplied values.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a zero determinant is met during inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDependentRays signals that two rays do not span the paraxial ray
	// space, so no unique matrix maps them.
	ErrDependentRays = errors.New("matrix: rays are linearly dependent")
)

// Operation tags used when wrapping sentinels.
const (
	opInverse  = "Inverse"
	opFromRays = "FromRays"
	opTransfer = "Transfer"
	opRefract  = "Refraction"
)

// matrixErrorf wraps err with an operation tag, keeping errors.Is working.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
