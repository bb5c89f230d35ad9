package tubebank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectConstantsRegimes(t *testing.T) {
	cases := []struct {
		name        string
		re, st, sl  float64
		arrangement Arrangement
		want        Constants
	}{
		{"aligned laminar", 50, 20, 18.5, Aligned, Constants{C: 0.80, M: 0.40}},
		{"staggered laminar", 50, 20, 18.5, Staggered, Constants{C: 0.90, M: 0.40}},
		{"laminar lower bound", 10, 20, 18.5, Aligned, Constants{C: 0.80, M: 0.40}},
		{"aligned mixed", 500, 20, 18.5, Aligned, Constants{}},
		{"staggered mixed", 100, 20, 18.5, Staggered, Constants{}},
		{"aligned subcritical", 1000, 20, 18.536, Aligned, Constants{C: 0.27, M: 0.63}},
		{"staggered wide", 5e4, 60, 20, Staggered, Constants{C: 0.40, M: 0.60}},
		{"staggered ratio two", 5e4, 40, 20, Staggered, Constants{C: 0.40, M: 0.60}},
		{"aligned critical", 2e5, 20, 18.5, Aligned, Constants{C: 0.021, M: 0.84}},
		{"staggered critical", 1e6, 20, 18.5, Staggered, Constants{C: 0.022, M: 0.84}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, diags := SelectConstants(c.re, c.st, c.sl, c.arrangement)
			assert.Equal(t, c.want, got)
			assert.Empty(t, diags)
		})
	}
}

func TestSelectConstantsStaggeredNarrowRatio(t *testing.T) {
	got, diags := SelectConstants(1.3e4, 22.5, 20, Staggered)

	require.Empty(t, diags)
	assert.Equal(t, 0.35*math.Pow(1.125, 0.2), got.C)
	assert.Equal(t, 0.60, got.M)
}

func TestSelectConstantsDiagnostics(t *testing.T) {
	cases := []struct {
		name        string
		re, st, sl  float64
		arrangement Arrangement
		want        DiagnosticCode
	}{
		{"too small", 5, 20, 18.5, Aligned, ReynoldsTooSmall},
		{"too small staggered", 9.99, 20, 18.5, Staggered, ReynoldsTooSmall},
		{"too large", 3e6, 20, 18.5, Staggered, ReynoldsTooLarge},
		{"at upper bound", 2e6, 20, 18.5, Aligned, ReynoldsTooLarge},
		{"aligned narrow", 5e3, 10, 20, Aligned, AlignedInefficient},
		{"aligned ratio 0.7", 5e3, 14, 20, Aligned, AlignedInefficient},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, diags := SelectConstants(c.re, c.st, c.sl, c.arrangement)
			assert.True(t, got.Fallback())
			require.Len(t, diags, 1)
			assert.Equal(t, c.want, diags[0].Code)
			assert.NotEmpty(t, diags[0].Message)
		})
	}
}

func TestConstantsFallback(t *testing.T) {
	assert.True(t, Constants{}.Fallback())
	assert.False(t, Constants{C: 0.27, M: 0.63}.Fallback())
	assert.False(t, Constants{C: 0, M: 0.4}.Fallback())
}
