package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/batch"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	log "github.com/sirupsen/logrus"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type ImportResult struct {
	Count   int               `json:"count"`
	Results []tubebank.Result `json:"results"`
	Skipped []Skipped         `json:"skipped,omitempty"`
}

// ParseFile picks the parser from the file extension.
func ParseFile(name string, r io.Reader) ([]tubebank.Input, []Skipped, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		inputs, err := batch.ReadCSV(r)
		return inputs, nil, err
	case ".xlsx":
		return ParseXLSX(r)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q", filepath.Ext(name))
	}
}

// Cases calculates every case of an uploaded .csv or .xlsx file. With
// ?format=xlsx the results come back as a workbook.
func (h *Handler) Cases(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	inputs, skipped, err := ParseFile(header.Filename, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var results []tubebank.Result
	var rows []batch.ResultRow
	for i, in := range inputs {
		res, err := tubebank.Calculate(in)
		rows = append(rows, batch.ResultRowFrom(in, res, err))
		if err != nil {
			idx := i
			skipped = append(skipped, Skipped{Case: &idx, Reason: err.Error()})
			continue
		}
		tubebank.LogDiagnostics(in, res)
		results = append(results, res)
	}
	log.WithFields(log.Fields{
		"file":    header.Filename,
		"cases":   len(inputs),
		"skipped": len(skipped),
	}).Info("imported cases")

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
		if err := WriteXLSX(w, rows); err != nil {
			http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results, Skipped: skipped})
}
