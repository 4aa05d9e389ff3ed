package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the effective configuration of clocksheet.

Shows the configuration file location, whether it exists, and all settings
after defaults and environment overrides are applied. The API key is masked.

clocksheet works without a configuration file as long as CLOCKIFY_API_KEY,
CLOCKIFY_WORKSPACE_ID and CLOCKIFY_USER_ID are set.

Configuration file location:
  ~/.config/clocksheet/config.toml          Linux
  ~/Library/Application Support/clocksheet  macOS
  %APPDATA%\clocksheet\config.toml          Windows

Use --config to point at another file; .yaml and .yml files are read as YAML.`,
	Annotations: offline(),
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps)
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Create a sample config file",
	Annotations: offline(),
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(deps)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
