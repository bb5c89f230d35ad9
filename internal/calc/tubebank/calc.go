package tubebank

import (
	"fmt"
	"math"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/air"
)

// Geometry of the cell bank. Lengths in mm except CellLengthM.
type Geometry struct {
	CellDiameterMM      float64     `json:"cell_diameter_mm"`
	TransversePitchMM   float64     `json:"transverse_pitch_mm"`
	LongitudinalPitchMM float64     `json:"longitudinal_pitch_mm"`
	DiametricalPitchMM  float64     `json:"diametrical_pitch_mm"` // staggered only
	CellNumber          int         `json:"cell_number"`
	NumberTransverse    int         `json:"number_transverse"`
	NumberLongitudinal  int         `json:"number_longitudinal"`
	CellLengthM         float64     `json:"cell_length_m"`
	Arrangement         Arrangement `json:"arrangement"`
}

type FlowConditions struct {
	FreestreamTempC    float64 `json:"freestream_temp_c"`
	SurfaceTempC       float64 `json:"surface_temp_c"`
	FreestreamVelocity float64 `json:"freestream_velocity_m_s"`
}

type Options struct {
	// LegacyFallbackPrandtl evaluates the single-cylinder fallback with Pr/3
	// instead of Pr^(1/3).
	LegacyFallbackPrandtl bool `json:"legacy_fallback_prandtl"`
}

type Input struct {
	Geometry Geometry       `json:"geometry"`
	Flow     FlowConditions `json:"flow"`
	Options  Options        `json:"options"`
}

type Result struct {
	MaxReynolds                  float64        `json:"max_reynolds"`
	NusseltNumber                float64        `json:"nusselt_number"`
	AverageConvectiveCoefficient float64        `json:"average_convective_coefficient_w_m2k"`
	ExitTemperatureC             float64        `json:"exit_temperature_c"`
	LogMeanTempDifference        float64        `json:"log_mean_temp_difference_c"`
	TotalHeatTransferW           float64        `json:"total_heat_transfer_w"`
	Film                         air.Film       `json:"film"`
	Prandtl                      air.PrandtlSet `json:"prandtl"`
	MaxVelocity                  float64        `json:"max_velocity_m_s"`
	Constants                    Constants      `json:"constants"`
	CorrectionFactor             float64        `json:"correction_factor"`
	Correlation                  string         `json:"correlation"`
	Diagnostics                  []Diagnostic   `json:"diagnostics,omitempty"`
}

const (
	CorrelationTubeBank       = "tube_bank"
	CorrelationSingleCylinder = "single_cylinder"
)

func (g Geometry) Validate() error {
	for name, v := range map[string]float64{
		"cell diameter":      g.CellDiameterMM,
		"transverse pitch":   g.TransversePitchMM,
		"longitudinal pitch": g.LongitudinalPitchMM,
		"diametrical pitch":  g.DiametricalPitchMM,
		"cell length":        g.CellLengthM,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, name)
		}
	}
	if !g.Arrangement.Valid() {
		return fmt.Errorf("%w: unknown arrangement %q", ErrInvalidInput, g.Arrangement)
	}
	if g.CellDiameterMM <= 0 {
		return fmt.Errorf("%w: cell diameter must be positive", ErrInvalidInput)
	}
	if g.TransversePitchMM <= g.CellDiameterMM {
		return fmt.Errorf("%w: transverse pitch %g mm must exceed cell diameter %g mm", ErrInvalidInput, g.TransversePitchMM, g.CellDiameterMM)
	}
	if g.LongitudinalPitchMM <= 0 {
		return fmt.Errorf("%w: longitudinal pitch must be positive", ErrInvalidInput)
	}
	if g.Arrangement == Staggered && g.DiametricalPitchMM != 0 && g.DiametricalPitchMM <= g.CellDiameterMM {
		return fmt.Errorf("%w: diametrical pitch %g mm must exceed cell diameter %g mm", ErrInvalidInput, g.DiametricalPitchMM, g.CellDiameterMM)
	}
	if g.CellNumber < 1 || g.NumberTransverse < 1 || g.NumberLongitudinal < 1 {
		return fmt.Errorf("%w: cell and row counts must be at least 1", ErrInvalidInput)
	}
	if g.CellLengthM <= 0 {
		return fmt.Errorf("%w: cell length must be positive", ErrInvalidInput)
	}
	return nil
}

// diametricalPitch is the pitch used by the Reynolds calculation; aligned
// banks have none.
func (g Geometry) diametricalPitch() float64 {
	if g.Arrangement != Staggered {
		return 0
	}
	return g.DiametricalPitchMM
}

func (f FlowConditions) Validate() error {
	for name, v := range map[string]float64{
		"freestream temperature": f.FreestreamTempC,
		"surface temperature":    f.SurfaceTempC,
		"freestream velocity":    f.FreestreamVelocity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, name)
		}
	}
	if f.FreestreamVelocity <= 0 {
		return fmt.Errorf("%w: freestream velocity must be positive", ErrInvalidInput)
	}
	return nil
}

func (in Input) Validate() error {
	if err := in.Geometry.Validate(); err != nil {
		return err
	}
	return in.Flow.Validate()
}

// Calculate computes the thermal performance of the cell bank: exit air
// temperature and total heat transfer, with every intermediate value.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	g, f := in.Geometry, in.Flow

	film := air.FilmAt(f.SurfaceTempC, f.FreestreamTempC)
	pr := air.PrandtlAt(f.SurfaceTempC, f.FreestreamTempC)
	cf := CorrectionFactor(g.Arrangement, g.NumberLongitudinal)

	vMax := MaxVelocity(f.FreestreamVelocity, g.CellDiameterMM, g.TransversePitchMM, g.diametricalPitch())
	re := MaxReynolds(film.Density, g.CellDiameterMM, film.Viscosity, g.TransversePitchMM, f.FreestreamVelocity, g.diametricalPitch())

	constants, diags := SelectConstants(re, g.TransversePitchMM, g.LongitudinalPitchMM, g.Arrangement)
	nu := Nusselt(constants, re, pr, cf, in.Options.LegacyFallbackPrandtl)
	hBar := ConvectiveCoefficient(nu, film.Conductivity, g.CellDiameterMM)

	exit := ExitTemperature(g.CellDiameterMM, g.CellNumber, hBar, film.Density, f.FreestreamVelocity,
		g.NumberTransverse, g.TransversePitchMM, film.SpecificHeat, f.SurfaceTempC, f.FreestreamTempC)
	lmtd, err := LogMeanTempDifference(f.SurfaceTempC, f.FreestreamTempC, exit)
	if err != nil {
		return Result{}, err
	}

	correlation := CorrelationTubeBank
	if constants.Fallback() {
		correlation = CorrelationSingleCylinder
	}

	return Result{
		MaxReynolds:                  re,
		NusseltNumber:                nu,
		AverageConvectiveCoefficient: hBar,
		ExitTemperatureC:             exit,
		LogMeanTempDifference:        lmtd,
		TotalHeatTransferW:           TotalHeatTransfer(g.CellNumber, hBar, g.CellDiameterMM, lmtd, g.CellLengthM),
		Film:                         film,
		Prandtl:                      pr,
		MaxVelocity:                  vMax,
		Constants:                    constants,
		CorrectionFactor:             cf,
		Correlation:                  correlation,
		Diagnostics:                  diags,
	}, nil
}
