package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(out io.Writer) *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:   "tubebank",
		Short: "Convective heat transfer of an air-cooled cylindrical cell bank.",
		Long: `tubebank estimates the airflow heat removal of a battery pack laid out ` +
			`as an aligned or staggered bank of cylindrical cells.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(), newBatchCmd(), newReportCmd(), newTokenCmd())
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
