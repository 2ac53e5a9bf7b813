package cli

import (
	"github.com/spf13/cobra"

	"photodater/internal/app"
	"photodater/internal/config"
	fsinfra "photodater/internal/infra/fs"
)

var (
	renameMaxInterval int
	renameDryRun      bool
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename the directory to its canonical date-range name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("max-interval") {
			renameMaxInterval = config.RenameMaxInterval()
		}

		dir, set, err := scanDirectory(cmd.Context())
		if err != nil {
			return reportNoDates(err)
		}

		planner := app.Planner{Logger: newLogger()}
		plan, err := planner.PlanRename(dir, set, renameMaxInterval)
		if err != nil {
			return reportNoDates(err)
		}

		printer := newPrinter()
		printer.PrintDirRename(plan, renameDryRun)
		if renameDryRun {
			return nil
		}

		executor := app.Executor{FS: fsinfra.OSFS{}}
		return executor.ExecuteDirRename(cmd.Context(), plan)
	},
}

func init() {
	renameCmd.Flags().IntVar(&renameMaxInterval, "max-interval", 0, "widest allowed content range in days")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "print the plan without renaming")
	rootCmd.AddCommand(renameCmd)
}
