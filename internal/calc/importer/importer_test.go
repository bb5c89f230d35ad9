package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/batch"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(batch.Columns))
	for i, c := range batch.Columns {
		header[i] = c
	}
	rows := [][]interface{}{
		header,
		{"aligned", 18.5, 20, 18.536, 0, 180, 4, 45, 0.32535, 30, 60, 2.5, false},
		{"staggered", 18, 22.5, 20, 19, 180, 4, 45, 0.32535, 30, 60, 2.5},
		{"aligned", "wide", 20, 18.536, 0, 180, 4, 45, 0.32535, 30, 60, 2.5},
		{"aligned", 18.5, 20},
		{"aligned", 18.5, 10, 18.536, 0, 180, 4, 45, 0.32535, 30, 60, 2.5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	inputs, skipped, err := ParseXLSX(bytes.NewReader(sampleWorkbook(t)))
	require.NoError(t, err)

	require.Len(t, inputs, 3)
	assert.Equal(t, tubebank.DefaultInput(), inputs[0])
	assert.Equal(t, tubebank.Staggered, inputs[1].Geometry.Arrangement)
	assert.Equal(t, 19.0, inputs[1].Geometry.DiametricalPitchMM)

	require.Len(t, skipped, 2)
	assert.Equal(t, 4, skipped[0].Row)
	assert.Contains(t, skipped[0].Reason, "cell_diameter_mm")
	assert.Equal(t, 5, skipped[1].Row)
}

func TestParseXLSXRejectsGarbage(t *testing.T) {
	_, _, err := ParseXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestWriteXLSXCanBeReadBack(t *testing.T) {
	in := tubebank.DefaultInput()
	res, err := tubebank.Calculate(in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, []batch.ResultRow{batch.ResultRowFrom(in, res, nil)}))

	inputs, skipped, err := ParseXLSX(&buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, inputs, 1)
	assert.Equal(t, in, inputs[0])
}

func TestParseFile(t *testing.T) {
	csv := strings.Join(batch.Columns, ",") + "\n" +
		"aligned,18.5,20,18.536,0,180,4,45,0.32535,30,60,2.5,false\n"
	inputs, _, err := ParseFile("cases.CSV", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []tubebank.Input{tubebank.DefaultInput()}, inputs)

	_, _, err = ParseFile("cases.json", strings.NewReader("{}"))
	assert.Error(t, err)
}

func upload(t *testing.T, name string, content []byte, query string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/tubebank/import"+query, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Cases(rec, req)
	return rec
}

func TestHandlerCases(t *testing.T) {
	rec := upload(t, "pack.xlsx", sampleWorkbook(t), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res ImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Skipped, 3)
	require.NotNil(t, res.Skipped[2].Case)
	assert.Equal(t, 2, *res.Skipped[2].Case)
	assert.Contains(t, res.Skipped[2].Reason, "transverse pitch")
}

func TestHandlerCasesAsWorkbook(t *testing.T) {
	rec := upload(t, "pack.xlsx", sampleWorkbook(t), "?format=xlsx")
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestHandlerCasesRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	(&Handler{}).Cases(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(t, "pack.txt", []byte("x"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
