// SPDX-License-Identifier: MIT
// Package: paraxial/firstorder
//
// options.go: functional options for New.
//
// Defaults:
//   • wavelength = the system's primary wavelength

package firstorder

import (
	"fmt"

	"github.com/katalvlaran/paraxial/numeric"
)

// Option customizes an Analyzer.
type Option func(*config)

type config struct {
	wavelength float64
}

// WithWavelength evaluates every query at wl (µm) instead of the system's
// primary wavelength. Panics on a non-positive or non-finite wl.
func WithWavelength(wl float64) Option {
	if !(wl > 0) || numeric.IsInf(wl) {
		panic(fmt.Sprintf("firstorder: WithWavelength: bad wavelength %v", wl))
	}

	return func(c *config) {
		c.wavelength = wl
	}
}
