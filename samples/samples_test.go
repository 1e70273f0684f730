package samples_test

import (
	"testing"

	"github.com/katalvlaran/paraxial/optic"
	"github.com/katalvlaran/paraxial/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSamplesBuild(t *testing.T) {
	for _, name := range samples.Names() {
		t.Run(name, func(t *testing.T) {
			ctor, err := samples.Lookup(name)
			require.NoError(t, err)
			sys, err := ctor()
			require.NoError(t, err)
			_, err = sys.StopIndex()
			assert.NoError(t, err, "every sample flags a stop")
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"afocal_keplerian", "cooke_triplet", "edmund_49_847", "singlet_rear_stop"}, samples.Names())
}

func TestLookupUnknown(t *testing.T) {
	_, err := samples.Lookup("petzval")
	assert.ErrorIs(t, err, samples.ErrUnknownSample)
}

func TestOverridesApplyLast(t *testing.T) {
	sys, err := samples.CookeTriplet(optic.WithAperture(optic.FloatByStopSize, 7.6))
	require.NoError(t, err)
	assert.Equal(t, optic.Aperture{Type: optic.FloatByStopSize, Value: 7.6}, sys.Aperture())
	assert.Equal(t, 20.0, sys.MaxField())
	assert.Equal(t, 0.55, sys.PrimaryWavelength())
}

func TestCookeTripletGeometry(t *testing.T) {
	sys, err := samples.CookeTriplet()
	require.NoError(t, err)
	require.Equal(t, 8, sys.NumSurfaces())
	stop, err := sys.StopIndex()
	require.NoError(t, err)
	assert.Equal(t, 4, stop)
	assert.InDelta(t, 60.17675, sys.Z(sys.ImageIndex()), 1e-9)
	assert.InDelta(t, 1.6226085614386794, sys.Index(1, 0.55), 1e-15)
}
