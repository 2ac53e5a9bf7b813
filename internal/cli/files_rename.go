package cli

import (
	"github.com/spf13/cobra"

	"photodater/internal/app"
	fsinfra "photodater/internal/infra/fs"
)

var (
	filesRenameName   string
	filesRenameDryRun bool
)

var filesRenameCmd = &cobra.Command{
	Use:   "files-rename",
	Short: "Rename files to a zero-padded sequence in timestamp order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, set, err := scanDirectory(cmd.Context())
		if err != nil {
			return reportNoDates(err)
		}

		planner := app.Planner{Logger: newLogger()}
		plan, err := planner.PlanFilesRename(dir, set, filesRenameName)
		if err != nil {
			return reportNoDates(err)
		}

		printer := newPrinter()
		printer.PrintFileRenamePlan(plan, filesRenameDryRun)
		if filesRenameDryRun || len(plan.Steps) == 0 {
			return nil
		}

		executor := app.Executor{FS: fsinfra.OSFS{}}
		execErr := executor.ExecuteFilesRename(cmd.Context(), &plan)
		printer.PrintFileRenameOutcome(plan)
		return execErr
	},
}

func init() {
	filesRenameCmd.Flags().StringVar(&filesRenameName, "name", "", "base name for the sequence (default: directory suffix)")
	filesRenameCmd.Flags().BoolVar(&filesRenameDryRun, "dry-run", false, "print the plan without renaming")
	rootCmd.AddCommand(filesRenameCmd)
}
