package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli/handlers"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reports over HTTP",
	Long: `Start an HTTP server with the report dialogs, the project list, the raw
entries of a sheet and a pull endpoint.

Routes:
  GET  /                        Index of the sheets
  GET  /markdown                All reports
  GET  /sheets                  Sheets as JSON
  GET  /sheets/{name}/markdown  Report of a sheet (?format=text for plain text)
  GET  /sheets/{name}/entries   Raw Clockify entries
  POST /sheets/{name}/pull      Refresh a sheet (?totals=true&from=&to=)
  GET  /projects                Workspace projects
  GET  /healthz                 Liveness check`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Serve(cmd.Context(), deps, serveAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "listen address")
}
