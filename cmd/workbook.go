package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli/handlers"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore the workbook from a backup file",
	Long: `Restore the local workbook file from a backup.

A backup is taken before every pull. By default the most recent backup
(.bak.1) is restored; a number from 1 to 3 picks an older one.

Examples:
  clocksheet restore       Restore from most recent backup
  clocksheet restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Restore(deps, args)
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check workbook file health",
	Long:  `Validate the local workbook file and report its sheet and cell counts.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Validate(deps)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(validateCmd)
}
