package air

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type TableInfo struct {
	Name   string  `json:"name"`
	Unit   string  `json:"unit"`
	Scale  float64 `json:"scale"`
	Points []Point `json:"points"`
}

type Properties struct {
	Temperature  float64 `json:"temperature_c"`
	Density      float64 `json:"density_kg_m3"`
	Viscosity    float64 `json:"dynamic_viscosity_pa_s"`
	Conductivity float64 `json:"thermal_conductivity_w_mk"`
	SpecificHeat float64 `json:"specific_heat_j_kgk"`
	Prandtl      float64 `json:"prandtl"`
}

func PropertiesAt(celsius float64) Properties {
	return Properties{
		Temperature:  celsius,
		Density:      Density.At(celsius),
		Viscosity:    Viscosity.At(celsius),
		Conductivity: Conductivity.At(celsius),
		SpecificHeat: SpecificHeat.At(celsius),
		Prandtl:      Prandtl.At(celsius),
	}
}

type Handler struct{}

// Properties answers ?t=<degC> with interpolated properties, or with every
// table when t is absent.
func (h *Handler) Properties(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	raw := r.URL.Query().Get("t")
	if raw == "" {
		var out []TableInfo
		for _, t := range Tables() {
			out = append(out, TableInfo{Name: t.Name(), Unit: t.Unit(), Scale: t.Scale(), Points: t.Points()})
		}
		json.NewEncoder(w).Encode(out)
		return
	}
	celsius, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		http.Error(w, "t must be a number", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(PropertiesAt(celsius))
}
