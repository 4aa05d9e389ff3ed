package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli/handlers"
)

var pullFlags handlers.PullFlags

// pullCmd represents the pull command
var pullCmd = &cobra.Command{
	Use:   "pull [sheet]",
	Short: "Refresh a sheet from Clockify",
	Long: `Replace the entry range of a sheet with the Clockify entries of its window.

The window is read from the start and end cells of the sheet unless --from
or --to is given. Proof annotations are kept for rows whose date and start
time come back unchanged. The workbook is backed up before it is cleared.

Examples:
  clocksheet pull                     Refresh the last sheet
  clocksheet pull "Week 12"           Refresh a specific sheet
  clocksheet pull --totals            Also rewrite the totals range
  clocksheet pull --from 2024-03-18 --to 2024-03-24`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Pull(cmd.Context(), deps, sheetArg(args), pullFlags)
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)

	pullCmd.Flags().BoolVar(&pullFlags.Totals, "totals", false, "rewrite the totals range")
	pullCmd.Flags().StringVar(&pullFlags.From, "from", "", "override the window start (YYYY-MM-DD)")
	pullCmd.Flags().StringVar(&pullFlags.To, "to", "", "override the window end (YYYY-MM-DD)")
}
