package batch

import (
	"fmt"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type BatchInput struct {
	Items []tubebank.Input `json:"items"`
}

type Summary struct {
	Count                int     `json:"count"`
	MinHeatTransferW     float64 `json:"min_heat_transfer_w"`
	MaxHeatTransferW     float64 `json:"max_heat_transfer_w"`
	MeanHeatTransferW    float64 `json:"mean_heat_transfer_w"`
	MaxExitTemperatureC  float64 `json:"max_exit_temperature_c"`
	WithDiagnosticsCount int     `json:"with_diagnostics_count"`
}

type BatchResult struct {
	Results []tubebank.Result `json:"results"`
	Summary Summary           `json:"summary"`
}

func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, fmt.Errorf("no items")
	}
	out := BatchResult{Results: make([]tubebank.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := tubebank.Calculate(item)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	out.Summary = Summarize(out.Results)
	return out, nil
}

// Summarize aggregates heat transfer and exit temperature over results.
func Summarize(results []tubebank.Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	q := make([]float64, len(results))
	exit := make([]float64, len(results))
	s := Summary{Count: len(results)}
	for i, r := range results {
		q[i] = r.TotalHeatTransferW
		exit[i] = r.ExitTemperatureC
		if len(r.Diagnostics) > 0 {
			s.WithDiagnosticsCount++
		}
	}
	s.MinHeatTransferW = floats.Min(q)
	s.MaxHeatTransferW = floats.Max(q)
	s.MeanHeatTransferW = stat.Mean(q, nil)
	s.MaxExitTemperatureC = floats.Max(exit)
	return s
}
