package report

import (
	"fmt"
	"io"
	"time"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Notes   string    `json:"notes"`
	Date    time.Time `json:"-"`
}

// Render writes a one-page A4 calculation report.
func Render(w io.Writer, meta Meta, in tubebank.Input, res tubebank.Result) error {
	if meta.Title == "" {
		meta.Title = "Battery Pack Heat Transfer Report"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}
	g, f := in.Geometry, in.Flow

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Geometry")
	rows(pdf, [][2]string{
		{"Arrangement", string(g.Arrangement)},
		{"Cell diameter", fmt.Sprintf("%.3f mm", g.CellDiameterMM)},
		{"Transverse pitch", fmt.Sprintf("%.3f mm", g.TransversePitchMM)},
		{"Longitudinal pitch", fmt.Sprintf("%.3f mm", g.LongitudinalPitchMM)},
		{"Diametrical pitch", fmt.Sprintf("%.3f mm", g.DiametricalPitchMM)},
		{"Cells", fmt.Sprintf("%d (%d transverse, %d longitudinal)", g.CellNumber, g.NumberTransverse, g.NumberLongitudinal)},
		{"Cell length", fmt.Sprintf("%.4f m", g.CellLengthM)},
	})

	section(pdf, "Flow")
	rows(pdf, [][2]string{
		{"Freestream temperature", fmt.Sprintf("%.2f C", f.FreestreamTempC)},
		{"Surface temperature", fmt.Sprintf("%.2f C", f.SurfaceTempC)},
		{"Freestream velocity", fmt.Sprintf("%.3f m/s", f.FreestreamVelocity)},
	})

	section(pdf, "Air properties at film temperature")
	rows(pdf, [][2]string{
		{"Film temperature", fmt.Sprintf("%.2f C", res.Film.Temperature)},
		{"Density", fmt.Sprintf("%.4f kg/m3", res.Film.Density)},
		{"Dynamic viscosity", fmt.Sprintf("%.4e Pa s", res.Film.Viscosity)},
		{"Thermal conductivity", fmt.Sprintf("%.5f W/mK", res.Film.Conductivity)},
		{"Specific heat", fmt.Sprintf("%.2f J/kgK", res.Film.SpecificHeat)},
		{"Prandtl (freestream / surface / film)", fmt.Sprintf("%.4f / %.4f / %.4f",
			res.Prandtl.Freestream, res.Prandtl.Surface, res.Prandtl.Film)},
	})

	section(pdf, "Results")
	rows(pdf, [][2]string{
		{"Maximum velocity", fmt.Sprintf("%.3f m/s", res.MaxVelocity)},
		{"Maximum Reynolds number", fmt.Sprintf("%.1f", res.MaxReynolds)},
		{"Correlation", fmt.Sprintf("%s (C=%.4f, m=%.3f)", res.Correlation, res.Constants.C, res.Constants.M)},
		{"Row correction factor", fmt.Sprintf("%.3f", res.CorrectionFactor)},
		{"Nusselt number", fmt.Sprintf("%.3f", res.NusseltNumber)},
		{"Convective coefficient", fmt.Sprintf("%.3f W/m2K", res.AverageConvectiveCoefficient)},
		{"Exit air temperature", fmt.Sprintf("%.4f C", res.ExitTemperatureC)},
		{"Log-mean temperature difference", fmt.Sprintf("%.4f C", res.LogMeanTempDifference)},
		{"Total heat transfer", fmt.Sprintf("%.2f W", res.TotalHeatTransferW)},
	})

	if len(res.Diagnostics) > 0 {
		section(pdf, "Warnings")
		for _, d := range res.Diagnostics {
			pdf.MultiCell(0, 6, "- "+d.Message, "", "L", false)
		}
	}
	if meta.Notes != "" {
		section(pdf, "Notes")
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func rows(pdf *gofpdf.Fpdf, kv [][2]string) {
	for _, r := range kv {
		pdf.CellFormat(80, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r[1], "", 1, "L", false, 0, "")
	}
}
