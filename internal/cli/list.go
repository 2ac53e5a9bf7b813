package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List files in timestamp order, flagging those without dates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, set, err := scanDirectory(cmd.Context())
		if err != nil {
			return err
		}
		newPrinter().PrintList(set)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
