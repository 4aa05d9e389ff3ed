package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli/handlers"
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List workspace projects",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Projects(cmd.Context(), deps)
	},
}

// entriesCmd represents the entries command
var entriesCmd = &cobra.Command{
	Use:   "entries [sheet]",
	Short: "Print the raw Clockify entries of a sheet's window",
	Long: `Print the time entries Clockify returns for the window of a sheet,
exactly as received. Useful to check what a pull would write.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Entries(cmd.Context(), deps, sheetArg(args))
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(entriesCmd)
}
