package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli/handlers"
)

var markdownFlags handlers.MarkdownFlags

// markdownCmd represents the markdown command
var markdownCmd = &cobra.Command{
	Use:     "markdown [sheet]",
	Aliases: []string{"md"},
	Short:   "Render the markdown report of a sheet",
	Long: `Render the weekly report of a sheet as markdown.

On a terminal the report opens in an interactive viewer ([ and ] switch
sheets, q quits). Use --plain, or pipe the output, to print it instead.

Examples:
  clocksheet markdown                 Report of the last sheet
  clocksheet markdown "Week 12"       Report of a specific sheet
  clocksheet markdown --all --plain   All reports, newest first`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Markdown(cmd.Context(), deps, sheetArg(args), markdownFlags)
	},
}

func init() {
	rootCmd.AddCommand(markdownCmd)

	markdownCmd.Flags().BoolVarP(&markdownFlags.All, "all", "a", false, "render every sheet except the first")
	markdownCmd.Flags().BoolVar(&markdownFlags.Plain, "plain", false, "print instead of opening the viewer")
}
