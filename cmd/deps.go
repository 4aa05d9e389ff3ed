package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/clocksheet/internal/cli"
)

// offlineAnnotation marks commands that never open the workbook
const offlineAnnotation = "clocksheet/offline"

// deps is the global dependencies instance used by commands. It is built
// from the configuration before the first command runs; tests replace it
// with SetDeps.
var deps *cli.Deps

// global flags
var (
	configPath string
	verbose    bool
)

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	deps = d
}

// ResetDeps drops the dependencies so the next command loads them again
func ResetDeps() {
	deps = nil
}

// loadDeps is the root PersistentPreRunE
func loadDeps(cmd *cobra.Command, args []string) error {
	if deps != nil {
		return nil
	}
	d, err := cli.Load(cmd.Context(), cli.Options{
		ConfigPath: configPath,
		Verbose:    verbose,
		Offline:    cmd.Annotations[offlineAnnotation] == "true",
	})
	if err != nil {
		return err
	}
	deps = d
	return nil
}

func offline() map[string]string {
	return map[string]string{offlineAnnotation: "true"}
}

// sheetArg returns the optional sheet argument
func sheetArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
