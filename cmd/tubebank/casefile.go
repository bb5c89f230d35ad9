package main

import (
	"fmt"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"gopkg.in/ini.v1"
)

// loadCase reads an ini case file. Missing keys keep the default input values.
func loadCase(source interface{}) (tubebank.Input, error) {
	file, err := ini.Load(source)
	if err != nil {
		return tubebank.Input{}, fmt.Errorf("load case: %w", err)
	}
	in := tubebank.DefaultInput()

	geo := file.Section("geometry")
	g := &in.Geometry
	g.CellDiameterMM = geo.Key("cell_diameter_mm").MustFloat64(g.CellDiameterMM)
	g.TransversePitchMM = geo.Key("transverse_pitch_mm").MustFloat64(g.TransversePitchMM)
	g.LongitudinalPitchMM = geo.Key("longitudinal_pitch_mm").MustFloat64(g.LongitudinalPitchMM)
	g.DiametricalPitchMM = geo.Key("diametrical_pitch_mm").MustFloat64(g.DiametricalPitchMM)
	g.CellNumber = geo.Key("cell_number").MustInt(g.CellNumber)
	g.NumberTransverse = geo.Key("number_transverse").MustInt(g.NumberTransverse)
	g.NumberLongitudinal = geo.Key("number_longitudinal").MustInt(g.NumberLongitudinal)
	g.CellLengthM = geo.Key("cell_length_m").MustFloat64(g.CellLengthM)
	if geo.HasKey("arrangement") {
		if g.Arrangement, err = tubebank.ParseArrangement(geo.Key("arrangement").String()); err != nil {
			return tubebank.Input{}, err
		}
	}

	flow := file.Section("flow")
	f := &in.Flow
	f.FreestreamTempC = flow.Key("freestream_temp_c").MustFloat64(f.FreestreamTempC)
	f.SurfaceTempC = flow.Key("surface_temp_c").MustFloat64(f.SurfaceTempC)
	f.FreestreamVelocity = flow.Key("freestream_velocity_m_s").MustFloat64(f.FreestreamVelocity)

	in.Options.LegacyFallbackPrandtl = file.Section("options").Key("legacy_fallback_prandtl").MustBool(false)
	return in, nil
}
