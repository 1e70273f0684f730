// SPDX-License-Identifier: MIT
// Package: paraxial/firstorder
//
// errors.go: sentinel errors of first-order analysis.

package firstorder

import (
	"fmt"

	"github.com/katalvlaran/paraxial/optic"
	"github.com/katalvlaran/paraxial/trace"
)

var (
	// ErrAfocal is returned by focal-point dependent queries on a system with
	// zero net power.
	ErrAfocal = trace.ErrAfocal

	// ErrNilSystem indicates New was called without a system.
	ErrNilSystem = fmt.Errorf("%w: firstorder: nil system", optic.ErrInvalidConfiguration)

	// ErrImageAtInfinity indicates a marginal ray leaving parallel to the
	// axis, which has no working F-number.
	ErrImageAtInfinity = fmt.Errorf("%w: firstorder: image at infinity", optic.ErrInvalidConfiguration)
)
