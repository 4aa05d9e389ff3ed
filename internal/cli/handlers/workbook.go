package handlers

import (
	"fmt"
	"strconv"

	"github.com/xolan/clocksheet/internal/cli"
	"github.com/xolan/clocksheet/internal/storage"
)

// Restore lists the backups of the local workbook and restores backup n
// (the most recent one when args is empty)
func Restore(deps *cli.Deps, args []string) {
	backups, err := deps.Services.Workbook.Backups()
	if err != nil {
		fail(deps, "Failed to list backups", err, "")
		return
	}
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	_, _ = fmt.Fprint(deps.Stdout, cli.FormatBackups(backups))
	_, _ = fmt.Fprintln(deps.Stdout)

	n := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			fail(deps, fmt.Sprintf("Invalid backup number '%s'", args[0]), nil, "")
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			fail(deps, fmt.Sprintf("Backup number must be between 1 and %d (got %d)", storage.MaxBackupCount, num), nil, "")
			return
		}
		n = num
	}

	if err := deps.Services.Workbook.Restore(n); err != nil {
		fail(deps, "Failed to restore backup", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d\n", n)
}

// Validate reports the health of the local workbook file
func Validate(deps *cli.Deps) {
	health, err := deps.Services.Workbook.Validate()
	if err != nil {
		fail(deps, "Failed to validate workbook", err, "")
		return
	}

	out := cli.FormatHealth(deps.Services.Workbook.LocalPath(), health)
	if health.Exists && !health.Valid {
		_, _ = fmt.Fprint(deps.Stderr, out)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'clocksheet restore' to roll back to a backup")
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, out)
}
