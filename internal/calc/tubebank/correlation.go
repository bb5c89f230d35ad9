package tubebank

import "math"

// Constants are the tube-bank correlation constants Nu = C Re^m ...
// The zero value selects the single-cylinder fallback.
type Constants struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
}

func (c Constants) Fallback() bool {
	return c.C == 0 && c.M == 0
}

const (
	alignedMinRatio  = 0.7
	staggeredSplit   = 2.0
	reynoldsLaminar  = 10.0
	reynoldsMixed    = 100.0
	reynoldsSubcrit  = 1000.0
	reynoldsCritical = 2e5
	reynoldsMax      = 2e6
)

// SelectConstants picks C and m from the Reynolds regime, the pitch ratio
// ST/SL and the arrangement. Uncovered cases return the fallback constants
// and a diagnostic.
func SelectConstants(re, transversePitch, longitudinalPitch float64, arrangement Arrangement) (Constants, []Diagnostic) {
	ratio := transversePitch / longitudinalPitch

	switch {
	case re < reynoldsLaminar:
		return Constants{}, []Diagnostic{{
			Code:    ReynoldsTooSmall,
			Message: "the Reynolds number for this case is too small, try increasing the flow rate",
		}}
	case re < reynoldsMixed:
		if arrangement == Staggered {
			return Constants{C: 0.90, M: 0.40}, nil
		}
		return Constants{C: 0.80, M: 0.40}, nil
	case re < reynoldsSubcrit:
		return Constants{}, nil
	case re < reynoldsCritical:
		if arrangement == Staggered {
			if ratio < staggeredSplit {
				return Constants{C: 0.35 * math.Pow(ratio, 0.2), M: 0.60}, nil
			}
			return Constants{C: 0.40, M: 0.60}, nil
		}
		if ratio > alignedMinRatio {
			return Constants{C: 0.27, M: 0.63}, nil
		}
		return Constants{}, []Diagnostic{{
			Code:    AlignedInefficient,
			Message: "aligned tubes are inefficient in this geometry, a staggered arrangement should be used instead",
		}}
	case re < reynoldsMax:
		if arrangement == Staggered {
			return Constants{C: 0.022, M: 0.84}, nil
		}
		return Constants{C: 0.021, M: 0.84}, nil
	default:
		return Constants{}, []Diagnostic{{
			Code:    ReynoldsTooLarge,
			Message: "the Reynolds number for this case is too large, try reducing the flow rate",
		}}
	}
}
