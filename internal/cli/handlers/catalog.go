package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/clocksheet/internal/cli"
)

// Projects prints the workspace projects
func Projects(ctx context.Context, deps *cli.Deps) {
	projects, err := deps.Services.Catalog.Projects(ctx)
	if err != nil {
		fail(deps, "Failed to load projects", err, "")
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, cli.FormatProjects(projects))
}

// Entries prints the raw Clockify response for the window of a sheet
func Entries(ctx context.Context, deps *cli.Deps, sheetName string) {
	raw, err := deps.Services.Catalog.Entries(ctx, sheetName)
	if err != nil {
		fail(deps, "Failed to load time entries", err, "")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, string(raw))
}
