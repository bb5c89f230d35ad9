package tubebank

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	LogDiagnostics(input, res)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// WriteError maps calculation errors to HTTP status codes.
func WriteError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrDomain) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.WithError(err).Error("calculation failed")
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}

// LogDiagnostics reports every correlation advisory of a finished calculation.
func LogDiagnostics(in Input, res Result) {
	for _, d := range res.Diagnostics {
		log.WithFields(log.Fields{
			"code":               d.Code,
			"arrangement":        in.Geometry.Arrangement,
			"reynolds":           res.MaxReynolds,
			"transverse_pitch":   in.Geometry.TransversePitchMM,
			"longitudinal_pitch": in.Geometry.LongitudinalPitchMM,
			"correlation":        res.Correlation,
		}).Warn(d.Message)
	}
}
