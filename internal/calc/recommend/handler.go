package recommend

import (
	"encoding/json"
	"net/http"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
)

type Handler struct{}

func (h *Handler) Arrangement(w http.ResponseWriter, r *http.Request) {
	var input tubebank.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Arrangement(input)
	if err != nil {
		tubebank.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
