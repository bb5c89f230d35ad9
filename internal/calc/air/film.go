package air

// FilmTemperature is the mean of the surface and freestream temperatures, degC.
func FilmTemperature(surface, freestream float64) float64 {
	return (surface + freestream) / 2
}

// Film holds the air properties at the film temperature, SI units.
type Film struct {
	Temperature  float64 `json:"temperature_c"`
	Density      float64 `json:"density_kg_m3"`
	Viscosity    float64 `json:"dynamic_viscosity_pa_s"`
	Conductivity float64 `json:"thermal_conductivity_w_mk"`
	SpecificHeat float64 `json:"specific_heat_j_kgk"`
}

func FilmAt(surface, freestream float64) Film {
	tf := FilmTemperature(surface, freestream)
	return Film{
		Temperature:  tf,
		Density:      Density.At(tf),
		Viscosity:    Viscosity.At(tf),
		Conductivity: Conductivity.At(tf),
		SpecificHeat: SpecificHeat.At(tf),
	}
}

// PrandtlSet is the Prandtl number at the freestream, surface and film temperatures.
type PrandtlSet struct {
	Freestream float64 `json:"freestream"`
	Surface    float64 `json:"surface"`
	Film       float64 `json:"film"`
}

func PrandtlAt(surface, freestream float64) PrandtlSet {
	return PrandtlSet{
		Freestream: Prandtl.At(freestream),
		Surface:    Prandtl.At(surface),
		Film:       Prandtl.At(FilmTemperature(surface, freestream)),
	}
}
