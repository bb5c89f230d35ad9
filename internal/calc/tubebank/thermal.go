package tubebank

import (
	"fmt"
	"math"
)

// ConvectiveCoefficient returns the average convective coefficient, W/m2K.
func ConvectiveCoefficient(nusselt, conductivity, diameter float64) float64 {
	return nusselt * conductivity / (diameter / 1000)
}

// ExitTemperature returns the bulk air temperature leaving the bank, degC,
// from the energy balance over the whole bank. Diameter and transverse pitch
// are in mm.
func ExitTemperature(diameter float64, cellNumber int, hBar, density, velocity float64,
	numberTransverse int, transversePitch, specificHeat, surfaceTemp, freestreamTemp float64) float64 {
	d := diameter / 1000
	st := transversePitch / 1000
	exponent := -math.Pi * d * float64(cellNumber) * hBar /
		(density * velocity * float64(numberTransverse) * st * specificHeat)
	return surfaceTemp - (surfaceTemp-freestreamTemp)*math.Exp(exponent)
}

// LogMeanTempDifference fails with ErrDomain when there is no temperature
// change or either end difference is not positive.
func LogMeanTempDifference(surfaceTemp, freestreamTemp, exitTemp float64) (float64, error) {
	d1 := surfaceTemp - freestreamTemp
	d2 := surfaceTemp - exitTemp
	if d1 <= 0 || d2 <= 0 {
		return 0, fmt.Errorf("%w: log-mean temperature difference needs positive end differences, got %g and %g", ErrDomain, d1, d2)
	}
	if d1 == d2 {
		return 0, fmt.Errorf("%w: log-mean temperature difference is undefined with no temperature change", ErrDomain)
	}
	return (d1 - d2) / math.Log(d1/d2), nil
}

// TotalHeatTransfer returns the heat rate from all cells, W. Diameter in mm,
// cell length in m.
func TotalHeatTransfer(cellNumber int, hBar, diameter, lmtd, cellLength float64) float64 {
	return float64(cellNumber) * hBar * math.Pi * (diameter / 1000) * lmtd * cellLength
}
