package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	log "github.com/sirupsen/logrus"
)

type Input struct {
	Meta
	Input tubebank.Input `json:"input"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := tubebank.Calculate(input.Input)
	if err != nil {
		tubebank.WriteError(w, err)
		return
	}
	tubebank.LogDiagnostics(input.Input, res)

	var buf bytes.Buffer
	if err := Render(&buf, input.Meta, input.Input, res); err != nil {
		log.WithError(err).Error("render report")
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Write(buf.Bytes())
}
