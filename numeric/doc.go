// SPDX-License-Identifier: MIT

// Package numeric holds the small set of floating-point predicates shared by
// the paraxial packages.
//
// Every helper is generic over constraints.Float so the same checks serve
// float32 fixtures and the float64 engine alike. Nothing here allocates.
package numeric
