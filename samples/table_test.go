package samples

import (
	"math"
	"testing"

	"github.com/katalvlaran/paraxial/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustTable(t *testing.T) {
	tab := mustTable("flat", material.Point{Wavelength: 0.55, Index: 1.5})
	assert.Equal(t, 1.5, tab.Index(0.55))

	assert.Panics(t, func() { mustTable("empty") })
	assert.Panics(t, func() { mustTable("bad", material.Point{Wavelength: -1, Index: 1.5}) })
	assert.Panics(t, func() {
		mustTable("dup",
			material.Point{Wavelength: 0.55, Index: 1.5},
			material.Point{Wavelength: 0.55, Index: 1.6},
		)
	})
}

// The fitted SK16 indices are the catalogue formula shifted by a constant.
func TestSK16TableOffset(t *testing.T) {
	catalogue, err := material.Lookup("SK16")
	require.NoError(t, err)

	const offset = 8.733778786851332e-07
	for _, wl := range []float64{0.48, 0.55, 0.65} {
		d := sk16.Index(wl) - catalogue.Index(wl)
		assert.InDelta(t, offset, d, 1e-12, "λ=%g", wl)
		assert.Less(t, math.Abs(d), 1e-6, "λ=%g", wl)
	}
}
