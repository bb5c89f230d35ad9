package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/batch"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const staggeredCase = `
[geometry]
cell_diameter_mm = 18
transverse_pitch_mm = 22.5
longitudinal_pitch_mm = 20
diametrical_pitch_mm = 19
arrangement = Staggered

[flow]
freestream_velocity_m_s = 2.5
`

func TestLoadCaseOverridesDefaults(t *testing.T) {
	in, err := loadCase([]byte(staggeredCase))
	require.NoError(t, err)

	want := tubebank.DefaultInput()
	want.Geometry.CellDiameterMM = 18
	want.Geometry.TransversePitchMM = 22.5
	want.Geometry.LongitudinalPitchMM = 20
	want.Geometry.DiametricalPitchMM = 19
	want.Geometry.Arrangement = tubebank.Staggered
	assert.Equal(t, want, in)
}

func TestLoadCaseRejectsArrangement(t *testing.T) {
	_, err := loadCase([]byte("[geometry]\narrangement = hexagonal\n"))
	assert.ErrorIs(t, err, tubebank.ErrInvalidInput)
}

func TestRunDefaults(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Exit temperature of the air: 59.9998"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Total heat transfer: 2181.78"), lines[1])
}

func TestRunFlagsAndJSON(t *testing.T) {
	out, err := execute(t, "run", "--json", "--arrangement", "staggered", "--diameter", "18",
		"--st", "22.5", "--sl", "20", "--sd", "19")
	require.NoError(t, err)

	var res tubebank.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InEpsilon(t, 28.125, res.MaxVelocity, 1e-12)
	assert.InEpsilon(t, 2454.3161267981727, res.TotalHeatTransferW, 1e-9)
}

func TestRunCaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.ini")
	require.NoError(t, os.WriteFile(path, []byte(staggeredCase), 0o600))

	out, err := execute(t, "run", "--case", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total heat transfer: 2454.31")
}

func TestRunInvalid(t *testing.T) {
	_, err := execute(t, "run", "--velocity", "0")
	assert.ErrorIs(t, err, tubebank.ErrInvalidInput)

	_, err = execute(t, "run", "--arrangement", "diagonal")
	assert.ErrorIs(t, err, tubebank.ErrInvalidInput)
}

func TestBatchCSVToXLSXAndCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cases.csv")
	csv := strings.Join(batch.Columns, ",") + "\n" +
		"aligned,18.5,20,18.536,0,180,4,45,0.32535,30,60,2.5,false\n" +
		"aligned,0,20,18.536,0,180,4,45,0.32535,30,60,2.5,false\n"
	require.NoError(t, os.WriteFile(in, []byte(csv), 0o600))

	out, err := execute(t, "batch", "--in", in, "--out", filepath.Join(dir, "results.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "Calculated 1 cases")

	data, err := os.ReadFile(filepath.Join(dir, "results.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], tubebank.CorrelationTubeBank)
	assert.Contains(t, lines[2], "invalid input")

	_, err = execute(t, "batch", "--in", in, "--out", filepath.Join(dir, "results.xlsx"))
	require.NoError(t, err)
	info, err := os.Stat(filepath.Join(dir, "results.xlsx"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestBatchRejectsUnknownOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cases.csv")
	require.NoError(t, os.WriteFile(in, []byte(strings.Join(batch.Columns, ",")+"\n"), 0o600))

	_, err := execute(t, "batch", "--in", in, "--out", filepath.Join(dir, "results.txt"))
	assert.ErrorContains(t, err, "unsupported output type")
}

func TestReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	_, err := execute(t, "report", "--out", path, "--project", "pack")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestToken(t *testing.T) {
	t.Setenv("TOKEN_KEY", "secret")
	out, err := execute(t, "token", "--subject", "pack-team")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)

	t.Setenv("TOKEN_KEY", "")
	_, err = execute(t, "token", "--subject", "pack-team")
	assert.ErrorContains(t, err, "TOKEN_KEY")
}

func TestLogLevelFlag(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "run")
	assert.Error(t, err)
}
