package tubebank

import (
	"math"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/air"
)

// Nusselt applies the selected correlation and the row correction factor.
// With fallback constants the single-cylinder correlation
// Nu = 0.683 Re^0.466 Pr^(1/3) at the film temperature is used; legacy
// reproduces the older Pr/3 arithmetic instead of the cube root.
func Nusselt(c Constants, re float64, pr air.PrandtlSet, correctionFactor float64, legacy bool) float64 {
	if c.Fallback() {
		prTerm := math.Cbrt(pr.Film)
		if legacy {
			prTerm = pr.Film / 3
		}
		return 0.683 * math.Pow(re, 0.466) * prTerm * correctionFactor
	}

	nu := c.C * math.Pow(re, c.M) * math.Pow(pr.Freestream, 0.36) * math.Pow(pr.Freestream/pr.Surface, 0.25)
	return nu * correctionFactor
}
