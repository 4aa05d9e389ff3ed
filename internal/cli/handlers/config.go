package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/clocksheet/internal/cli"
)

// ShowConfig displays the effective configuration
func ShowConfig(deps *cli.Deps) {
	path := deps.Services.Config.GetPath()

	body, err := deps.Services.Config.Show()
	if err != nil {
		fail(deps, "Failed to render configuration", err, "")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprint(deps.Stdout, body)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		fail(deps, "Failed to create config file", err, "")
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
