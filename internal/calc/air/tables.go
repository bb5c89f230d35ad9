package air

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Point is one tabulated breakpoint, in the table's source units.
type Point struct {
	Celsius float64 `json:"celsius"`
	Value   float64 `json:"value"`
}

// Table is a fixed temperature/property dataset evaluated by piecewise-linear
// interpolation. Outside the tabulated range the end values are returned.
type Table struct {
	name   string
	unit   string
	scale  float64
	points []Point
	pl     interp.PiecewiseLinear
}

func newTable(name, unit string, scale float64, celsius, values []float64) *Table {
	if len(celsius) != len(values) {
		panic(fmt.Sprintf("air: table %s has %d temperatures and %d values", name, len(celsius), len(values)))
	}
	t := &Table{name: name, unit: unit, scale: scale}
	if err := t.pl.Fit(celsius, values); err != nil {
		panic(fmt.Sprintf("air: table %s: %v", name, err))
	}
	t.points = make([]Point, len(celsius))
	for i := range celsius {
		t.points[i] = Point{Celsius: celsius[i], Value: values[i]}
	}
	return t
}

// Raw returns the interpolated value in the table's source units.
func (t *Table) Raw(celsius float64) float64 {
	return t.pl.Predict(celsius)
}

// At returns the interpolated value converted to SI units.
func (t *Table) At(celsius float64) float64 {
	return t.Raw(celsius) * t.scale
}

func (t *Table) Name() string { return t.name }

// Unit is the SI unit of values returned by At.
func (t *Table) Unit() string { return t.unit }

// Scale is the factor applied to the source values by At.
func (t *Table) Scale() float64 { return t.scale }

// Points returns a copy of the breakpoints.
func (t *Table) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Air at atmospheric pressure. Density, viscosity and conductivity from the
// Engineering Toolbox, 0-125 degC.
var standardCelsius = []float64{0, 5, 10, 15, 20, 25, 30, 40, 50, 60, 80, 100, 125}

var (
	Density = newTable("density", "kg/m3", 1, standardCelsius, []float64{
		1.292, 1.268, 1.246, 1.225, 1.204, 1.184, 1.164, 1.127, 1.093, 1.060, 1.000, 0.9467, 0.8868,
	})

	// source values in uPa s
	Viscosity = newTable("dynamic_viscosity", "Pa s", 1e-6, standardCelsius, []float64{
		17.15, 17.40, 17.64, 17.89, 18.13, 18.37, 18.60, 19.07, 19.53, 19.99, 20.88, 21.74, 22.79,
	})

	// source values in mW/mK
	Conductivity = newTable("thermal_conductivity", "W/mK", 1e-3, standardCelsius, []float64{
		24.36, 24.74, 25.12, 25.50, 25.87, 26.24, 26.62, 27.35, 28.08, 28.80, 30.23, 31.62, 33.33,
	})

	// source values in kJ/kgK
	SpecificHeat = newTable("specific_heat", "J/kgK", 1000,
		[]float64{0.0, 6.9, 15.6, 26.9, 46.9, 66.9, 86.9, 107, 127},
		[]float64{1.006, 1.006, 1.006, 1.006, 1.007, 1.009, 1.010, 1.012, 1.014},
	)

	Prandtl = newTable("prandtl", "", 1,
		[]float64{0.0, 6.9, 15.6, 26.9, 46.9, 66.9, 86.9, 106.9, 126.9},
		[]float64{0.711, 0.710, 0.709, 0.707, 0.705, 0.703, 0.701, 0.700, 0.699},
	)
)

// Tables lists every property table in a stable order.
func Tables() []*Table {
	return []*Table{Density, Viscosity, Conductivity, SpecificHeat, Prandtl}
}
