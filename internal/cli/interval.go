package cli

import (
	"github.com/spf13/cobra"

	"photodater/internal/app"
)

var intervalCmd = &cobra.Command{
	Use:   "interval",
	Short: "Print the date range covering the directory contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, set, err := scanDirectory(cmd.Context())
		if err != nil {
			return reportNoDates(err)
		}

		planner := app.Planner{Logger: newLogger()}
		_, computed, err := planner.DirectoryStatus(dir, set)
		if err != nil {
			return reportNoDates(err)
		}

		newPrinter().PrintInterval(computed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intervalCmd)
}
