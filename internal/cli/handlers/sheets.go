package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/clocksheet/internal/cli"
	"github.com/xolan/clocksheet/internal/timeutil"
)

// Previous prints the name of the sheet left of sheetName
func Previous(ctx context.Context, deps *cli.Deps, sheetName string) {
	name, err := deps.Services.Workbook.Previous(ctx, sheetName)
	if err != nil {
		fail(deps, "Failed to look up the previous sheet", err, "")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, name)
}

// Sheets lists the sheets of the workbook
func Sheets(ctx context.Context, deps *cli.Deps) {
	infos, err := deps.Services.Workbook.List(ctx)
	if err != nil {
		fail(deps, "Failed to list sheets", err, "")
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, cli.FormatSheets(infos))
}

// AddSheet appends a sheet, seeding its window cells when flags select one
func AddSheet(ctx context.Context, deps *cli.Deps, name string, flags timeutil.WindowFlags) {
	info, err := deps.Services.Workbook.AddSheet(ctx, name, flags)
	if err != nil {
		fail(deps, "Failed to add sheet", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added sheet %q at index %d (previous: %s)\n", info.Name, info.Index, info.Previous)
	if flags.IsSet() {
		layout := deps.Services.Workbook.Layout()
		_, _ = fmt.Fprintf(deps.Stdout, "Window cells %s and %s filled in\n", layout.Start.A1(), layout.End.A1())
	}
}

// Cell prints the value of ref, or writes value into it when value is set
func Cell(ctx context.Context, deps *cli.Deps, sheetName, ref string, value *string) {
	if value == nil {
		got, err := deps.Services.Workbook.Cell(ctx, sheetName, ref)
		if err != nil {
			fail(deps, fmt.Sprintf("Failed to read cell %s", ref), err, "")
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, got)
		return
	}

	if err := deps.Services.Workbook.SetCell(ctx, sheetName, ref, *value); err != nil {
		fail(deps, fmt.Sprintf("Failed to write cell %s", ref), err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Updated %s\n", ref)
}
