package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"photodater/internal/app"
	"photodater/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the directory name matches its contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, set, err := scanDirectory(cmd.Context())
		if err != nil {
			return reportNoDates(err)
		}

		planner := app.Planner{Logger: newLogger()}
		status, computed, err := planner.DirectoryStatus(dir, set)
		if err != nil {
			return reportNoDates(err)
		}

		newPrinter().PrintStatus(filepath.Base(dir), status, computed)
		switch status {
		case domain.StatusMismatch:
			return exitCode(1)
		case domain.StatusUnmanaged:
			return exitCode(2)
		default:
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
