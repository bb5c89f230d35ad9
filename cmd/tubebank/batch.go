package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/batch"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/importer"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runBatch calculates every case of in and writes one result row per case to
// out. Failed cases keep their row with the error filled in.
func runBatch(inPath, outPath string) (int, error) {
	src, err := os.Open(inPath)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	inputs, skipped, err := importer.ParseFile(inPath, src)
	if err != nil {
		return 0, err
	}
	for _, s := range skipped {
		log.WithFields(log.Fields{"row": s.Row, "file": inPath}).Warn(s.Reason)
	}

	rows := make([]batch.ResultRow, 0, len(inputs))
	failed := 0
	for i, in := range inputs {
		res, err := tubebank.Calculate(in)
		if err != nil {
			failed++
			log.WithError(err).WithField("case", i).Warn("case failed")
		} else {
			tubebank.LogDiagnostics(in, res)
		}
		rows = append(rows, batch.ResultRowFrom(in, res, err))
	}

	dst, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".csv":
		err = batch.WriteCSV(dst, rows)
	case ".xlsx":
		err = importer.WriteXLSX(dst, rows)
	default:
		err = fmt.Errorf("unsupported output type %q", filepath.Ext(outPath))
	}
	if err != nil {
		return 0, err
	}
	return len(rows) - failed, dst.Close()
}

func newBatchCmd() *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate every case of a .csv or .xlsx file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := runBatch(inPath, outPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calculated %d cases into %s\n", n, outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input cases, .csv or .xlsx")
	cmd.Flags().StringVar(&outPath, "out", "", "output results, .csv or .xlsx")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}
