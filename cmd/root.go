package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clocksheet",
	Short: "Pull Clockify time entries into a weekly timesheet",
	Long: `clocksheet copies Clockify time entries into a workbook with one sheet per
week and renders each week as a markdown report.

Usage:
  clocksheet pull [sheet]                  Refresh a sheet from Clockify (default: last sheet)
  clocksheet markdown [sheet]              Show the markdown report of a sheet
  clocksheet markdown --all                Reports of all weeks, newest first
  clocksheet projects                      List workspace projects
  clocksheet entries [sheet]               Raw Clockify entries for a sheet's window
  clocksheet previous [sheet]              Name of the sheet before a sheet
  clocksheet sheets                        List the sheets of the workbook
  clocksheet sheet add [name]              Add a sheet (--this-week, --last-week, --from/--to)
  clocksheet cell <ref> [value]            Read or write one cell, e.g. a proof link
  clocksheet serve                         Serve reports over HTTP
  clocksheet validate                      Check workbook file health
  clocksheet restore [n]                   Restore the workbook from backup (default: most recent)

Credentials come from the config file or from CLOCKIFY_API_KEY,
CLOCKIFY_WORKSPACE_ID and CLOCKIFY_USER_ID (a .env file is read too).`,
	SilenceUsage:      true,
	PersistentPreRunE: loadDeps,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"clocksheet version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
