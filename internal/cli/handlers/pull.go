package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/clocksheet/internal/cli"
	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/timeutil"
)

// PullFlags are the options of the pull command
type PullFlags struct {
	From   string
	To     string
	Totals bool
}

// Pull refreshes the entry range of a sheet from Clockify
func Pull(ctx context.Context, deps *cli.Deps, sheetName string, flags PullFlags) {
	loc := deps.Services.Workbook.Location()
	opts := service.PullOptions{Totals: flags.Totals}
	if flags.From != "" {
		opts.Start = timeutil.APIBound(flags.From, loc, false)
	}
	if flags.To != "" {
		opts.End = timeutil.APIBound(flags.To, loc, true)
	}

	result, err := deps.Services.Timesheet.Pull(ctx, sheetName, opts)
	if err != nil {
		fail(deps, "Failed to pull time entries", err, "")
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatPullResult(result))
}
