package tubebank

import (
	"math"
	"testing"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/air"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectionFactor(t *testing.T) {
	assert.Equal(t, 0.99, CorrectionFactor(Aligned, 16))
	assert.Equal(t, 0.64, CorrectionFactor(Staggered, 1))
	assert.Equal(t, 0.70, CorrectionFactor(Aligned, 1))
	assert.Equal(t, 0.97, CorrectionFactor(Staggered, 10))
	assert.Equal(t, 1.0, CorrectionFactor(Aligned, 17))
	assert.Equal(t, 1.0, CorrectionFactor(Staggered, 17))
	assert.Equal(t, 1.0, CorrectionFactor(Aligned, 0))
	assert.Equal(t, 1.0, CorrectionFactor(Arrangement("hex"), 3))

	for rows := 1; rows <= 16; rows++ {
		for _, a := range []Arrangement{Aligned, Staggered} {
			f := CorrectionFactor(a, rows)
			assert.Greater(t, f, 0.0)
			assert.LessOrEqual(t, f, 1.0)
		}
	}
}

func TestMaxReynoldsAlignedIgnoresDiagonal(t *testing.T) {
	density, viscosity := 1.11, 19.3e-6
	d, st, v := 18.5, 20.0, 2.5
	v1 := st / (st - d) * v

	assert.Equal(t, v1, MaxVelocity(v, d, st, 0))
	assert.Equal(t, density*v1*(d/1000)/viscosity, MaxReynolds(density, d, viscosity, st, v, 0))
}

func TestMaxVelocityPicksLargerCandidate(t *testing.T) {
	// 22.5/(22.5-18) = 5.0 beats 22.5/(2*(20.3-18)) = 4.89
	assert.InEpsilon(t, 12.5, MaxVelocity(2.5, 18, 22.5, 20.3), 1e-12)
	// a tight diagonal wins
	assert.InEpsilon(t, 28.125, MaxVelocity(2.5, 18, 22.5, 19), 1e-12)
}

func TestNusselt(t *testing.T) {
	pr := air.PrandtlSet{Freestream: 0.707, Surface: 0.703, Film: 0.705}

	bank := Nusselt(Constants{C: 0.27, M: 0.63}, 3.5e4, pr, 0.97, false)
	want := 0.27 * math.Pow(3.5e4, 0.63) * math.Pow(0.707, 0.36) * math.Pow(0.707/0.703, 0.25) * 0.97
	assert.InEpsilon(t, want, bank, 1e-12)

	fallback := Nusselt(Constants{}, 700, pr, 0.9, false)
	assert.InEpsilon(t, 0.683*math.Pow(700, 0.466)*math.Cbrt(0.705)*0.9, fallback, 1e-12)

	legacy := Nusselt(Constants{}, 700, pr, 0.9, true)
	assert.InEpsilon(t, 0.683*math.Pow(700, 0.466)*(0.705/3)*0.9, legacy, 1e-12)
	assert.Less(t, legacy, fallback)
}

func TestConvectiveCoefficient(t *testing.T) {
	assert.InEpsilon(t, 100*0.027/0.018, ConvectiveCoefficient(100, 0.027, 18), 1e-12)
}

func TestExitTemperatureApproachesSurface(t *testing.T) {
	exit := ExitTemperature(18.5, 180, 260, 1.11, 2.5, 4, 20, 1006.9, 60, 30)
	assert.Greater(t, exit, 30.0)
	assert.Less(t, exit, 60.0)

	assert.Equal(t, 30.0, ExitTemperature(18.5, 180, 0, 1.11, 2.5, 4, 20, 1006.9, 60, 30))

	fewer := ExitTemperature(18.5, 10, 260, 1.11, 2.5, 4, 20, 1006.9, 60, 30)
	assert.Less(t, fewer, exit)
}

func TestLogMeanTempDifference(t *testing.T) {
	lmtd, err := LogMeanTempDifference(60, 30, 45)
	require.NoError(t, err)
	assert.InEpsilon(t, 15/math.Ln2, lmtd, 1e-12)

	_, err = LogMeanTempDifference(60, 60, 60)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = LogMeanTempDifference(60, 30, 30)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = LogMeanTempDifference(60, 30, 60)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = LogMeanTempDifference(20, 30, 25)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestTotalHeatTransfer(t *testing.T) {
	q := TotalHeatTransfer(180, 262.7, 18.5, 2.44, 0.32535)
	assert.InEpsilon(t, 180*262.7*math.Pi*0.0185*2.44*0.32535, q, 1e-12)
}

func TestParseArrangement(t *testing.T) {
	a, err := ParseArrangement(" Staggered ")
	require.NoError(t, err)
	assert.Equal(t, Staggered, a)

	a, err = ParseArrangement("aligned")
	require.NoError(t, err)
	assert.Equal(t, Aligned, a)

	_, err = ParseArrangement("inline")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
