package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"photodater/internal/app"
	apperrors "photodater/internal/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check MAX_DAYS",
	Short: "Succeed when the content range spans at most MAX_DAYS days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDays, err := strconv.Atoi(args[0])
		if err != nil || maxDays < 0 {
			return apperrors.Wrap(apperrors.InvalidConfig, "check", "",
				fmt.Errorf("MAX_DAYS must be a non-negative number, got %q", args[0]))
		}

		dir, set, err := scanDirectory(cmd.Context())
		if err != nil {
			return reportNoDates(err)
		}

		planner := app.Planner{Logger: newLogger()}
		_, computed, err := planner.DirectoryStatus(dir, set)
		if err != nil {
			return reportNoDates(err)
		}

		ok := computed.Days() <= maxDays
		newPrinter().PrintCheck(computed, maxDays, ok)
		if !ok {
			return exitCode(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
