package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/katalvlaran/paraxial/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lines runs the command and returns its output keyed by the first column.
func lines(t *testing.T, args ...string) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, run(args, &buf, false))

	out := make(map[string]string)
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		k, v, ok := strings.Cut(l, "\t")
		require.True(t, ok, "line %q", l)
		out[k] = v
	}

	return out
}

func TestRunCooke(t *testing.T) {
	got := lines(t, "-sample", "cooke_triplet")
	assert.Equal(t, "49.999783071", got["f2"])
	assert.Equal(t, "11.512158674", got["EPL"])
	assert.Equal(t, "infinity", got["# object distance"])
	assert.Len(t, got, 6+19)
	assert.Contains(t, got["# matrix"], "[[")
}

func TestRunLanguage(t *testing.T) {
	got := lines(t, "-sample", "cooke_triplet", "-lang", "de")
	assert.Equal(t, "49,999783071", got["f2"])
}

func TestRunAfocal(t *testing.T) {
	got := lines(t, "-sample", "afocal_keplerian")
	assert.Equal(t, "afocal", got["f1"])
	assert.Equal(t, "afocal", got["FNO"])
	assert.Equal(t, "0.000000000", got["EPL"])
}

func TestRunObjectDistance(t *testing.T) {
	got := lines(t, "-sample", "singlet_rear_stop", "-object-distance", "500", "-wavelength", "0.65")
	assert.Equal(t, "500", got["# object distance"])
	assert.Equal(t, "0.65", got["# wavelength"])

	got = lines(t, "-sample", "singlet_rear_stop", "-object-distance", "inf")
	assert.Equal(t, "infinity", got["# object distance"])
}

func TestRunList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-list"}, &buf, false))
	assert.Equal(t, strings.Join(samples.Names(), "\n")+"\n", buf.String())
}

func TestRunTerminalTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-sample", "edmund_49_847"}, &buf, true))
	assert.NotContains(t, buf.String(), "\t")
	assert.Contains(t, buf.String(), "25.397595913")
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"unknown sample", []string{"-sample", "nope"}},
		{"negative wavelength", []string{"-wavelength", "-1"}},
		{"negative distance", []string{"-object-distance", "-5"}},
		{"bad language", []string{"-lang", "!!"}},
		{"stray argument", []string{"extra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Error(t, run(tc.args, &buf, false))
		})
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, run([]string{"-h"}, &buf, false), flag.ErrHelp)
}
