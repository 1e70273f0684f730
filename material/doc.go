// SPDX-License-Identifier: MIT

// Package material resolves the refractive index of optical media.
//
// The paraxial engine only ever asks one question of a medium: "what is n at
// this wavelength?". Medium captures that question; this package ships the
// handful of answers the samples and tests need:
//
//   - Air             — n = 1 at every wavelength.
//   - Constant        — a fixed index (useful for fixtures resolved elsewhere).
//   - Sellmeier       — three-term Sellmeier dispersion formula.
//   - Table           — measured indices, linearly interpolated.
//   - Lookup(name)    — a small catalog of Sellmeier glasses (N-BK7, F2, ...).
//
// Wavelengths are in micrometres throughout.
package material
