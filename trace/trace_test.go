package trace_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/paraxial/matrix"
	"github.com/katalvlaran/paraxial/optic"
	"github.com/katalvlaran/paraxial/samples"
	"github.com/katalvlaran/paraxial/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wl = 0.55

// mustSample builds a sample system or fails the test.
func mustSample(t *testing.T, ctor samples.Constructor, opts ...optic.Option) *optic.System {
	t.Helper()
	sys, err := ctor(opts...)
	require.NoError(t, err)

	return sys
}

func TestRefractAndTransfer(t *testing.T) {
	// Parallel ray at height 1 on a surface R=50 from air into n=1.5.
	u := trace.Refract(1, 0, 1.0/50, 1, 1.5)
	assert.InDelta(t, -1.0/150, u, 1e-15)

	// Flat surface: only the index ratio acts.
	assert.InDelta(t, 0.1/1.5, trace.Refract(3, 0.1, 0, 1, 1.5), 1e-15)

	assert.Equal(t, 3.0, trace.Transfer(1, 0.5, 4))
}

func TestTraceRangeErrors(t *testing.T) {
	sys := mustSample(t, samples.CookeTriplet)
	cases := []struct {
		name        string
		first, last int
	}{
		{"object surface", 0, 3},
		{"reversed", 4, 2},
		{"past image", 1, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := trace.TraceRange(sys, wl, 1, 0, 0, tc.first, tc.last)
			assert.ErrorIs(t, err, trace.ErrSurfaceRange)
			assert.ErrorIs(t, err, optic.ErrInvalidConfiguration)
		})
	}
}

// TestInfiniteFirstGap checks that z0 = −Inf means "state given at the first
// surface", i.e. no transfer is applied before it.
func TestInfiniteFirstGap(t *testing.T) {
	sys := mustSample(t, samples.CookeTriplet)
	a, err := trace.Trace(sys, wl, 5, 0, math.Inf(-1))
	require.NoError(t, err)
	b, err := trace.Trace(sys, wl, 5, 0, sys.Z(1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, a.First)
	assert.Len(t, a.Rays, 7)
	assert.Equal(t, 5.0, a.Rays[0].Y)
}

func TestPathAt(t *testing.T) {
	sys := mustSample(t, samples.CookeTriplet)
	p, err := trace.TraceRange(sys, wl, 1, 0, sys.Z(2), 2, 5)
	require.NoError(t, err)

	r, ok := p.At(2)
	assert.True(t, ok)
	assert.Equal(t, 1.0, r.Y)
	_, ok = p.At(1)
	assert.False(t, ok)
	_, ok = p.At(6)
	assert.False(t, ok)
	assert.Equal(t, p.Rays[3], p.Last())
}

// TestSystemMatrixMatchesFactors rebuilds the Cooke triplet matrix from
// elementary refraction/transfer factors and compares it with the traced one.
func TestSystemMatrixMatchesFactors(t *testing.T) {
	sys := mustSample(t, samples.CookeTriplet)
	img := sys.ImageIndex()

	got, err := trace.SystemMatrix(sys, wl, 1, img)
	require.NoError(t, err)

	var factors []matrix.ABCD
	for i := 1; i <= img; i++ {
		if i > 1 {
			gap, err := matrix.Transfer(sys.Z(i)-sys.Z(i-1), sys.Index(i-1, wl))
			require.NoError(t, err)
			factors = append(factors, gap)
		}
		s, err := sys.Surface(i)
		require.NoError(t, err)
		r, err := matrix.Refraction(s.Curvature, sys.Index(i-1, wl), sys.Index(i, wl))
		require.NoError(t, err)
		factors = append(factors, r)
	}
	want := matrix.Chain(factors...)

	assert.InDelta(t, want.A, got.A, 1e-12)
	assert.InDelta(t, want.B, got.B, 1e-12)
	assert.InDelta(t, want.C, got.C, 1e-12)
	assert.InDelta(t, want.D, got.D, 1e-12)
	assert.InDelta(t, 1.0, got.Det(), 1e-12)
	assert.InEpsilon(t, -1/49.9997830714319, got.C, 1e-9)
}

func TestPupilLocations(t *testing.T) {
	sys := mustSample(t, samples.CookeTriplet)

	epl, err := trace.EntrancePupilLocation(sys, wl)
	require.NoError(t, err)
	assert.InEpsilon(t, 11.512158673746795, epl, 1e-9)

	xpl, err := trace.ExitPupilLocation(sys, wl)
	require.NoError(t, err)
	assert.InEpsilon(t, -50.961347703805274, xpl, 1e-9)
}

func TestPupilLocationStopOnFirstSurface(t *testing.T) {
	sys := mustSample(t, samples.Edmund49847)
	epl, err := trace.EntrancePupilLocation(sys, wl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, epl)

	xpl, err := trace.ExitPupilLocation(sys, wl)
	require.NoError(t, err)
	assert.InEpsilon(t, -25.402183998762045, xpl, 1e-9)
}

func TestPupilLocationNoStop(t *testing.T) {
	sys, err := optic.New([]optic.SurfaceSpec{
		{Thickness: math.Inf(1)},
		{Radius: 40, Thickness: 4, Medium: constant(1.5)},
		{Radius: -40, Thickness: 40},
		{},
	})
	require.NoError(t, err)

	_, err = trace.EntrancePupilLocation(sys, wl)
	assert.ErrorIs(t, err, optic.ErrNoStop)
	_, err = trace.ExitPupilLocation(sys, wl)
	assert.ErrorIs(t, err, optic.ErrNoStop)
}

// TestTelecentricEntrancePupil places the stop at the back focal point of a
// flat-backed lens, which sends the entrance pupil to infinity.
func TestTelecentricEntrancePupil(t *testing.T) {
	// Zero-thickness plano-convex, n=2, R=32: f = 32, every step exact in
	// binary floating point, stop at the back focal plane.
	sys, err := optic.New([]optic.SurfaceSpec{
		{Thickness: math.Inf(1)},
		{Radius: 32, Thickness: 0, Medium: constant(2)},
		{Radius: 0, Thickness: 32},
		{Radius: 0, Thickness: 10, IsStop: true},
		{},
	})
	require.NoError(t, err)

	_, err = trace.EntrancePupilLocation(sys, wl)
	assert.ErrorIs(t, err, trace.ErrPupilAtInfinity)
}
