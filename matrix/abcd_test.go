// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/paraxial/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// requireNear fails the test unless every entry of got is within eps of want.
func requireNear(t *testing.T, want, got matrix.ABCD) {
	t.Helper()
	require.InDelta(t, want.A, got.A, eps, "A")
	require.InDelta(t, want.B, got.B, eps, "B")
	require.InDelta(t, want.C, got.C, eps, "C")
	require.InDelta(t, want.D, got.D, eps, "D")
}

func TestTransfer(t *testing.T) {
	m, err := matrix.Transfer(10, 1.5)
	require.NoError(t, err)
	requireNear(t, matrix.ABCD{A: 1, B: 10 / 1.5, C: 0, D: 1}, m)

	_, err = matrix.Transfer(math.Inf(1), 1)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Transfer(1, 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestRefraction(t *testing.T) {
	// Convex surface R=50 from air into n=1.5: power 0.01.
	m, err := matrix.Refraction(1.0/50, 1, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, m.Power(), eps)
	assert.InDelta(t, 1.0, m.Det(), eps)

	_, err = matrix.Refraction(math.NaN(), 1, 1.5)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestChainThinLens checks that two surfaces with a zero gap give the
// lensmaker power (n−1)(c1−c2).
func TestChainThinLens(t *testing.T) {
	r1, err := matrix.Refraction(1.0/40, 1, 1.5)
	require.NoError(t, err)
	r2, err := matrix.Refraction(-1.0/40, 1.5, 1)
	require.NoError(t, err)

	m := matrix.Chain(r1, r2)
	assert.InDelta(t, 0.5*(2.0/40), m.Power(), eps)
	assert.InDelta(t, 1.0, m.Det(), eps)
	assert.False(t, m.IsAfocal())
}

func TestChainEmptyIsIdentity(t *testing.T) {
	assert.Equal(t, matrix.Identity, matrix.Chain())
}

func TestInverse(t *testing.T) {
	m := matrix.ABCD{A: 2, B: 3, C: 1, D: 2}
	inv, err := m.Inverse()
	require.NoError(t, err)
	requireNear(t, matrix.Identity, m.Mul(inv))
	requireNear(t, matrix.Identity, inv.Mul(m))

	_, err = matrix.ABCD{A: 1, B: 2, C: 2, D: 4}.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestApply(t *testing.T) {
	tr, err := matrix.Transfer(5, 1)
	require.NoError(t, err)
	got := tr.Apply(matrix.Vec{Y: 1, W: 0.2})
	assert.InDelta(t, 2.0, got.Y, eps)
	assert.InDelta(t, 0.2, got.W, eps)
}

// TestFromRaysRoundTrip reconstructs a known chain from the images of two
// arbitrary independent rays.
func TestFromRaysRoundTrip(t *testing.T) {
	r1, _ := matrix.Refraction(1.0/22, 1, 1.62)
	gap, _ := matrix.Transfer(3.2, 1.62)
	r2, _ := matrix.Refraction(-1.0/435, 1.62, 1)
	want := matrix.Chain(r1, gap, r2)

	in1 := matrix.Vec{Y: 1, W: 0}
	in2 := matrix.Vec{Y: 0.3, W: -0.7}
	got, err := matrix.FromRays(in1, want.Apply(in1), in2, want.Apply(in2))
	require.NoError(t, err)
	requireNear(t, want, got)
}

func TestFromRaysErrors(t *testing.T) {
	v := matrix.Vec{Y: 1, W: 2}
	_, err := matrix.FromRays(v, v, matrix.Vec{Y: 2, W: 4}, v)
	assert.ErrorIs(t, err, matrix.ErrDependentRays)

	_, err = matrix.FromRays(matrix.Vec{Y: math.Inf(1)}, v, v, v)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
