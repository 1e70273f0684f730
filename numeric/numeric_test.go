package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/paraxial/numeric"
	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, numeric.IsFinite(1.5))
	assert.True(t, numeric.IsFinite(float32(-2)))
	assert.False(t, numeric.IsFinite(math.Inf(1)))
	assert.False(t, numeric.IsFinite(math.NaN()))
}

func TestIsZeroAndInf(t *testing.T) {
	assert.True(t, numeric.IsZero(0.0))
	assert.False(t, numeric.IsZero(1e-300))
	assert.True(t, numeric.IsInf(math.Inf(-1)))
	assert.False(t, numeric.IsInf(1e308))
}

func TestClose(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"equal", 3, 3, true},
		{"relative", 1e6, 1e6 + 1e-4, true},
		{"absolute floor", 0, 1e-10, true},
		{"too far", 1, 1.001, false},
		{"infinities", math.Inf(1), math.Inf(1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, numeric.Close(tc.a, tc.b, numeric.DefaultTolerance))
		})
	}
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi/2, numeric.Radians(90.0), 1e-15)
	assert.InDelta(t, float32(math.Pi), numeric.Radians(float32(180)), 1e-6)
}

func TestFloat32(t *testing.T) {
	var zero float32
	assert.True(t, numeric.IsZero(zero))
	assert.True(t, numeric.IsInf(float32(math.Inf(1))))
	assert.False(t, numeric.IsFinite(float32(math.NaN())))
	assert.True(t, numeric.Close(float32(1), float32(1.0000001), float32(1e-6)))
	assert.False(t, numeric.Close(float32(1), float32(1.001), float32(1e-6)))
}
