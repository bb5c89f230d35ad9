package main

import (
	"fmt"
	"os"

	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/report"
	"github.com/michaelholm6/PrISUmBatteryPackHeatTransfer/internal/calc/tubebank"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var casePath, outPath string
	var meta report.Meta
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a PDF report of one case.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := tubebank.DefaultInput()
			if casePath != "" {
				var err error
				if in, err = loadCase(casePath); err != nil {
					return err
				}
			}
			res, err := tubebank.Calculate(in)
			if err != nil {
				return err
			}
			tubebank.LogDiagnostics(in, res)

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := report.Render(f, meta, in, res); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&casePath, "case", "", "ini case file (default inputs when empty)")
	cmd.Flags().StringVar(&outPath, "out", "report.pdf", "output PDF")
	cmd.Flags().StringVar(&meta.Project, "project", "", "project name")
	cmd.Flags().StringVar(&meta.Author, "author", "", "author")
	cmd.Flags().StringVar(&meta.Title, "title", "", "report title")
	return cmd
}
