package batch

import (
	"encoding/json"
	"net/http"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "no items", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		tubebank.WriteError(w, err)
		return
	}
	for i := range res.Results {
		tubebank.LogDiagnostics(input.Items[i], res.Results[i])
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
