package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/batch"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"github.com/xuri/excelize/v2"
)

// Skipped is a sheet row that could not be parsed, or a parsed case
// (0-based) that failed to calculate.
type Skipped struct {
	Row    int    `json:"row,omitempty"`
	Case   *int   `json:"case,omitempty"`
	Reason string `json:"reason"`
}

// ParseXLSX reads cases from the first sheet. The first row is a header and
// columns follow batch.Columns.
func ParseXLSX(r io.Reader) ([]tubebank.Input, []Skipped, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("empty sheet")
	}

	var inputs []tubebank.Input
	var skipped []Skipped
	for i := 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		in, err := parseRow(rows[i])
		if err != nil {
			skipped = append(skipped, Skipped{Row: i + 1, Reason: err.Error()})
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, skipped, nil
}

func parseRow(row []string) (tubebank.Input, error) {
	// the last column, legacy_fallback_prandtl, is optional
	if len(row) < len(batch.Columns)-1 {
		return tubebank.Input{}, fmt.Errorf("bad row: %d columns", len(row))
	}
	var r batch.Row
	r.Arrangement = row[0]

	floatCols := []*float64{
		&r.CellDiameterMM, &r.TransversePitchMM, &r.LongitudinalPitchMM, &r.DiametricalPitchMM,
	}
	for i, dst := range floatCols {
		v, err := toFloat(row[1+i])
		if err != nil {
			return tubebank.Input{}, fmt.Errorf("%s: %w", batch.Columns[1+i], err)
		}
		*dst = v
	}
	intCols := []*int{&r.CellNumber, &r.NumberTransverse, &r.NumberLongitudinal}
	for i, dst := range intCols {
		v, err := strconv.Atoi(strings.TrimSpace(row[5+i]))
		if err != nil {
			return tubebank.Input{}, fmt.Errorf("%s: %w", batch.Columns[5+i], err)
		}
		*dst = v
	}
	floatCols = []*float64{&r.CellLengthM, &r.FreestreamTempC, &r.SurfaceTempC, &r.FreestreamVelocity}
	for i, dst := range floatCols {
		v, err := toFloat(row[8+i])
		if err != nil {
			return tubebank.Input{}, fmt.Errorf("%s: %w", batch.Columns[8+i], err)
		}
		*dst = v
	}
	if len(row) > 12 && strings.TrimSpace(row[12]) != "" {
		legacy, err := strconv.ParseBool(strings.TrimSpace(row[12]))
		if err != nil {
			return tubebank.Input{}, fmt.Errorf("%s: %w", batch.Columns[12], err)
		}
		r.LegacyFallbackPrandtl = legacy
	}
	return r.ToInput()
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteXLSX writes one results row per case.
func WriteXLSX(w io.Writer, rows []batch.ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, 0, len(batch.Columns)+9)
	for _, c := range batch.Columns {
		header = append(header, c)
	}
	header = append(header, "max_reynolds", "nusselt_number", "convective_coefficient_w_m2k",
		"exit_temperature_c", "log_mean_temp_difference_c", "total_heat_transfer_w",
		"correlation", "diagnostics", "error")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.Arrangement, r.CellDiameterMM, r.TransversePitchMM, r.LongitudinalPitchMM, r.DiametricalPitchMM,
			r.CellNumber, r.NumberTransverse, r.NumberLongitudinal, r.CellLengthM,
			r.FreestreamTempC, r.SurfaceTempC, r.FreestreamVelocity, r.LegacyFallbackPrandtl,
			r.MaxReynolds, r.NusseltNumber, r.ConvectiveCoefficient,
			r.ExitTemperatureC, r.LogMeanTempDifference, r.TotalHeatTransferW,
			r.Correlation, r.Diagnostics, r.Error,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}
