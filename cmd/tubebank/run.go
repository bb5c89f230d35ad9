package main

import (
	"encoding/json"
	"fmt"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"github.com/spf13/cobra"
)

func bindInputFlags(cmd *cobra.Command, in *tubebank.Input, arrangement *string) {
	f := cmd.Flags()
	g := &in.Geometry
	f.Float64Var(&g.CellDiameterMM, "diameter", g.CellDiameterMM, "cell diameter, mm")
	f.Float64Var(&g.TransversePitchMM, "st", g.TransversePitchMM, "transverse pitch, mm")
	f.Float64Var(&g.LongitudinalPitchMM, "sl", g.LongitudinalPitchMM, "longitudinal pitch, mm")
	f.Float64Var(&g.DiametricalPitchMM, "sd", g.DiametricalPitchMM, "diametrical pitch, mm (staggered only)")
	f.IntVar(&g.CellNumber, "cells", g.CellNumber, "total number of cells")
	f.IntVar(&g.NumberTransverse, "nt", g.NumberTransverse, "cells per transverse row")
	f.IntVar(&g.NumberLongitudinal, "nl", g.NumberLongitudinal, "longitudinal rows")
	f.Float64Var(&g.CellLengthM, "length", g.CellLengthM, "cell length, m")
	f.StringVar(arrangement, "arrangement", string(g.Arrangement), "aligned or staggered")
	f.Float64Var(&in.Flow.FreestreamTempC, "tinf", in.Flow.FreestreamTempC, "freestream air temperature, degC")
	f.Float64Var(&in.Flow.SurfaceTempC, "ts", in.Flow.SurfaceTempC, "cell surface temperature, degC")
	f.Float64Var(&in.Flow.FreestreamVelocity, "velocity", in.Flow.FreestreamVelocity, "freestream velocity, m/s")
	f.BoolVar(&in.Options.LegacyFallbackPrandtl, "legacy-fallback", false, "use Pr/3 in the single-cylinder fallback")
}

// resolveInput prefers the case file when one is given.
func resolveInput(casePath string, in tubebank.Input, arrangement string) (tubebank.Input, error) {
	if casePath != "" {
		return loadCase(casePath)
	}
	a, err := tubebank.ParseArrangement(arrangement)
	if err != nil {
		return tubebank.Input{}, err
	}
	in.Geometry.Arrangement = a
	return in, nil
}

func newRunCmd() *cobra.Command {
	in := tubebank.DefaultInput()
	var arrangement, casePath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Calculate a single cell bank.",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(casePath, in, arrangement)
			if err != nil {
				return err
			}
			res, err := tubebank.Calculate(input)
			if err != nil {
				return err
			}
			tubebank.LogDiagnostics(input, res)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintf(out, "Exit temperature of the air: %v\n", res.ExitTemperatureC)
			fmt.Fprintf(out, "Total heat transfer: %v\n", res.TotalHeatTransferW)
			return nil
		},
	}
	bindInputFlags(cmd, &in, &arrangement)
	cmd.Flags().StringVar(&casePath, "case", "", "ini case file, overrides the input flags")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}
