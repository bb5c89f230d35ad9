package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
)

// Columns is the case-file column order shared by CSV and xlsx files.
var Columns = []string{
	"arrangement",
	"cell_diameter_mm",
	"transverse_pitch_mm",
	"longitudinal_pitch_mm",
	"diametrical_pitch_mm",
	"cell_number",
	"number_transverse",
	"number_longitudinal",
	"cell_length_m",
	"freestream_temp_c",
	"surface_temp_c",
	"freestream_velocity_m_s",
	"legacy_fallback_prandtl",
}

// Row is one case of a batch file.
type Row struct {
	Arrangement           string  `csv:"arrangement"`
	CellDiameterMM        float64 `csv:"cell_diameter_mm"`
	TransversePitchMM     float64 `csv:"transverse_pitch_mm"`
	LongitudinalPitchMM   float64 `csv:"longitudinal_pitch_mm"`
	DiametricalPitchMM    float64 `csv:"diametrical_pitch_mm"`
	CellNumber            int     `csv:"cell_number"`
	NumberTransverse      int     `csv:"number_transverse"`
	NumberLongitudinal    int     `csv:"number_longitudinal"`
	CellLengthM           float64 `csv:"cell_length_m"`
	FreestreamTempC       float64 `csv:"freestream_temp_c"`
	SurfaceTempC          float64 `csv:"surface_temp_c"`
	FreestreamVelocity    float64 `csv:"freestream_velocity_m_s"`
	LegacyFallbackPrandtl bool    `csv:"legacy_fallback_prandtl"`
}

func (r Row) ToInput() (tubebank.Input, error) {
	a, err := tubebank.ParseArrangement(r.Arrangement)
	if err != nil {
		return tubebank.Input{}, err
	}
	return tubebank.Input{
		Geometry: tubebank.Geometry{
			CellDiameterMM:      r.CellDiameterMM,
			TransversePitchMM:   r.TransversePitchMM,
			LongitudinalPitchMM: r.LongitudinalPitchMM,
			DiametricalPitchMM:  r.DiametricalPitchMM,
			CellNumber:          r.CellNumber,
			NumberTransverse:    r.NumberTransverse,
			NumberLongitudinal:  r.NumberLongitudinal,
			CellLengthM:         r.CellLengthM,
			Arrangement:         a,
		},
		Flow: tubebank.FlowConditions{
			FreestreamTempC:    r.FreestreamTempC,
			SurfaceTempC:       r.SurfaceTempC,
			FreestreamVelocity: r.FreestreamVelocity,
		},
		Options: tubebank.Options{LegacyFallbackPrandtl: r.LegacyFallbackPrandtl},
	}, nil
}

func RowFromInput(in tubebank.Input) Row {
	g, f := in.Geometry, in.Flow
	return Row{
		Arrangement:           string(g.Arrangement),
		CellDiameterMM:        g.CellDiameterMM,
		TransversePitchMM:     g.TransversePitchMM,
		LongitudinalPitchMM:   g.LongitudinalPitchMM,
		DiametricalPitchMM:    g.DiametricalPitchMM,
		CellNumber:            g.CellNumber,
		NumberTransverse:      g.NumberTransverse,
		NumberLongitudinal:    g.NumberLongitudinal,
		CellLengthM:           g.CellLengthM,
		FreestreamTempC:       f.FreestreamTempC,
		SurfaceTempC:          f.SurfaceTempC,
		FreestreamVelocity:    f.FreestreamVelocity,
		LegacyFallbackPrandtl: in.Options.LegacyFallbackPrandtl,
	}
}

// ResultRow is one line of a results file.
type ResultRow struct {
	Row
	MaxReynolds           float64 `csv:"max_reynolds"`
	NusseltNumber         float64 `csv:"nusselt_number"`
	ConvectiveCoefficient float64 `csv:"convective_coefficient_w_m2k"`
	ExitTemperatureC      float64 `csv:"exit_temperature_c"`
	LogMeanTempDifference float64 `csv:"log_mean_temp_difference_c"`
	TotalHeatTransferW    float64 `csv:"total_heat_transfer_w"`
	Correlation           string  `csv:"correlation"`
	Diagnostics           string  `csv:"diagnostics"`
	Error                 string  `csv:"error"`
}

func ResultRowFrom(in tubebank.Input, res tubebank.Result, err error) ResultRow {
	out := ResultRow{Row: RowFromInput(in)}
	if err != nil {
		out.Error = err.Error()
		return out
	}
	codes := make([]string, len(res.Diagnostics))
	for i, d := range res.Diagnostics {
		codes[i] = string(d.Code)
	}
	out.MaxReynolds = res.MaxReynolds
	out.NusseltNumber = res.NusseltNumber
	out.ConvectiveCoefficient = res.AverageConvectiveCoefficient
	out.ExitTemperatureC = res.ExitTemperatureC
	out.LogMeanTempDifference = res.LogMeanTempDifference
	out.TotalHeatTransferW = res.TotalHeatTransferW
	out.Correlation = res.Correlation
	out.Diagnostics = strings.Join(codes, ";")
	return out
}

// ReadCSV parses a case file with a header row.
func ReadCSV(r io.Reader) ([]tubebank.Input, error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}
	inputs := make([]tubebank.Input, 0, len(rows))
	for i, row := range rows {
		in, err := row.ToInput()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func WriteCSV(w io.Writer, rows []ResultRow) error {
	return gocsv.Marshal(&rows, w)
}
