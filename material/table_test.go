package material_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/paraxial/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableInterpolation(t *testing.T) {
	tab, err := material.NewTable("demo",
		material.Point{Wavelength: 0.65, Index: 1.60},
		material.Point{Wavelength: 0.45, Index: 1.64},
		material.Point{Wavelength: 0.55, Index: 1.62},
	)
	require.NoError(t, err)

	cases := []struct {
		wl, want float64
	}{
		{0.55, 1.62}, // exact hit
		{0.50, 1.63}, // interpolated
		{0.40, 1.65}, // extrapolated below
		{0.75, 1.58}, // extrapolated above
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, tab.Index(tc.wl), 1e-12, "wl=%g", tc.wl)
	}
	assert.Equal(t, "demo", tab.String())
}

func TestTableSinglePoint(t *testing.T) {
	tab, err := material.NewTable("one", material.Point{Wavelength: 0.55, Index: 1.7})
	require.NoError(t, err)
	assert.Equal(t, 1.7, tab.Index(0.3))
	assert.Equal(t, 1.7, tab.Index(2))
}

func TestTableErrors(t *testing.T) {
	_, err := material.NewTable("empty")
	assert.ErrorIs(t, err, material.ErrEmptyTable)

	_, err = material.NewTable("neg", material.Point{Wavelength: 0.55, Index: -1})
	assert.ErrorIs(t, err, material.ErrBadPoint)

	_, err = material.NewTable("inf", material.Point{Wavelength: math.Inf(1), Index: 1.5})
	assert.ErrorIs(t, err, material.ErrBadPoint)

	_, err = material.NewTable("dup",
		material.Point{Wavelength: 0.55, Index: 1.5},
		material.Point{Wavelength: 0.55, Index: 1.6},
	)
	assert.ErrorIs(t, err, material.ErrBadPoint)
}
