package tubebank

// Row correction factors for banks with fewer than 16 rows in the flow direction.
var (
	alignedCorrection = map[int]float64{
		1: 0.70, 2: 0.80, 3: 0.86, 4: 0.90, 5: 0.92, 6: 0.935, 7: 0.95, 8: 0.96,
		9: 0.965, 10: 0.97, 11: 0.975, 12: 0.98, 13: 0.98, 14: 0.983, 15: 0.986, 16: 0.99,
	}
	staggeredCorrection = map[int]float64{
		1: 0.64, 2: 0.76, 3: 0.84, 4: 0.89, 5: 0.92, 6: 0.935, 7: 0.95, 8: 0.96,
		9: 0.965, 10: 0.97, 11: 0.975, 12: 0.98, 13: 0.98, 14: 0.983, 15: 0.986, 16: 0.99,
	}
)

// CorrectionFactor returns the entrance-effect factor for the given number of
// longitudinal rows, or 1 when no correction applies.
func CorrectionFactor(arrangement Arrangement, rows int) float64 {
	var table map[int]float64
	switch arrangement {
	case Aligned:
		table = alignedCorrection
	case Staggered:
		table = staggeredCorrection
	}
	if f, ok := table[rows]; ok {
		return f
	}
	return 1
}
