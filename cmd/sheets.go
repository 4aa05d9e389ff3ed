package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli/handlers"
	"github.com/xolan/clocksheet/internal/timeutil"
)

var (
	windowFlags timeutil.WindowFlags
	cellSheet   string
)

// previousCmd represents the previous command
var previousCmd = &cobra.Command{
	Use:   "previous [sheet]",
	Short: "Print the name of the sheet before a sheet",
	Long: `Print the name of the sheet directly left of the given sheet (default:
the last sheet). The first sheet has no predecessor and prints
#NO_PREVIOUS_SHEET.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Previous(cmd.Context(), deps, sheetArg(args))
	},
}

// sheetsCmd represents the sheets command
var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets of the workbook",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Sheets(cmd.Context(), deps)
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Manage sheets",
}

// sheetAddCmd represents the sheet add command
var sheetAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a sheet at the end of the workbook",
	Long: `Add a sheet at the end of the workbook.

With a window flag the start and end cells are filled in, and the name
defaults to the ISO week of the start date.

Examples:
  clocksheet sheet add --this-week
  clocksheet sheet add "Week 12" --from 2024-03-18 --to 2024-03-24
  clocksheet sheet add Notes`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.AddSheet(cmd.Context(), deps, sheetArg(args), windowFlags)
	},
}

// cellCmd represents the cell command
var cellCmd = &cobra.Command{
	Use:   "cell <ref> [value]",
	Short: "Read or write a single cell",
	Long: `Print the value of a cell, or write value into it.

The reference is an A1 address, optionally with a sheet prefix.

Examples:
  clocksheet cell E6                              Description of the last sheet
  clocksheet cell F14 "https://example.com/pr/3"  Add a proof annotation
  clocksheet cell "'Week 12'!C2"`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var value *string
		if len(args) == 2 {
			value = &args[1]
		}
		handlers.Cell(cmd.Context(), deps, cellSheet, args[0], value)
	},
}

func init() {
	rootCmd.AddCommand(previousCmd)
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(cellCmd)
	sheetCmd.AddCommand(sheetAddCmd)

	sheetAddCmd.Flags().BoolVar(&windowFlags.ThisWeek, "this-week", false, "cover the current week")
	sheetAddCmd.Flags().BoolVar(&windowFlags.LastWeek, "last-week", false, "cover the previous week")
	sheetAddCmd.Flags().StringVar(&windowFlags.From, "from", "", "window start (YYYY-MM-DD)")
	sheetAddCmd.Flags().StringVar(&windowFlags.To, "to", "", "window end (YYYY-MM-DD)")

	cellCmd.Flags().StringVarP(&cellSheet, "sheet", "s", "", "sheet to use (default: last sheet)")
}
