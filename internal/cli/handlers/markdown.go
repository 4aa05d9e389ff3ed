package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/clocksheet/internal/cli"
	"github.com/xolan/clocksheet/internal/tui"
)

// MarkdownFlags are the options of the markdown command
type MarkdownFlags struct {
	All   bool
	Plain bool
}

// Markdown renders the report of one sheet, or of all sheets. On a
// terminal the report opens in the viewer unless Plain is set.
func Markdown(ctx context.Context, deps *cli.Deps, sheetName string, flags MarkdownFlags) {
	if !flags.Plain && deps.View != nil && deps.IsTerminal != nil && deps.IsTerminal() {
		opts := tui.Options{Sheet: sheetName, All: flags.All, Theme: deps.Config.TUI.Theme}
		if err := deps.View(ctx, tui.FromServices(deps.Services), opts); err != nil {
			fail(deps, "Failed to run the viewer", err, "Use --plain to print the markdown instead")
		}
		return
	}

	var (
		out string
		err error
	)
	if flags.All {
		out, err = deps.Services.Report.RenderAll(ctx)
	} else {
		out, err = deps.Services.Report.Render(ctx, sheetName)
	}
	if err != nil {
		fail(deps, "Failed to generate markdown", err, "")
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, out)
}
