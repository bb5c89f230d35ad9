package recommend

import (
	"fmt"
	"math"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
)

type ArrangementResult struct {
	Recommended        tubebank.Arrangement `json:"recommended"`
	DiametricalPitchMM float64              `json:"diametrical_pitch_mm"`
	Aligned            tubebank.Result      `json:"aligned"`
	Staggered          tubebank.Result      `json:"staggered"`
	GainW              float64              `json:"gain_w"`
	Notes              string               `json:"notes"`
}

// DiagonalPitch is the staggered diametrical pitch sqrt(SL^2 + (ST/2)^2), mm.
func DiagonalPitch(transversePitch, longitudinalPitch float64) float64 {
	return math.Hypot(longitudinalPitch, transversePitch/2)
}

// Arrangement evaluates the pack both aligned and staggered and recommends
// the one with the larger total heat transfer. Without a diametrical pitch the
// staggered case uses DiagonalPitch.
func Arrangement(in tubebank.Input) (ArrangementResult, error) {
	aligned := in
	aligned.Geometry.Arrangement = tubebank.Aligned

	staggered := in
	staggered.Geometry.Arrangement = tubebank.Staggered
	if staggered.Geometry.DiametricalPitchMM <= 0 {
		staggered.Geometry.DiametricalPitchMM = DiagonalPitch(in.Geometry.TransversePitchMM, in.Geometry.LongitudinalPitchMM)
	}

	ra, err := tubebank.Calculate(aligned)
	if err != nil {
		return ArrangementResult{}, fmt.Errorf("aligned: %w", err)
	}
	rs, err := tubebank.Calculate(staggered)
	if err != nil {
		return ArrangementResult{}, fmt.Errorf("staggered: %w", err)
	}

	out := ArrangementResult{
		DiametricalPitchMM: staggered.Geometry.DiametricalPitchMM,
		Aligned:            ra,
		Staggered:          rs,
	}
	if rs.TotalHeatTransferW > ra.TotalHeatTransferW {
		out.Recommended = tubebank.Staggered
		out.GainW = rs.TotalHeatTransferW - ra.TotalHeatTransferW
	} else {
		out.Recommended = tubebank.Aligned
		out.GainW = ra.TotalHeatTransferW - rs.TotalHeatTransferW
	}
	out.Notes = fmt.Sprintf("%s arrangement transfers %.2f W more.", out.Recommended, out.GainW)
	return out, nil
}
