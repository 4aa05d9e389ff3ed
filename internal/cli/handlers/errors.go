package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/clocksheet/internal/cli"
	"github.com/xolan/clocksheet/internal/clockify"
	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/storage"
)

// fail prints the error block used by every command and exits with 1.
// An empty hint is replaced by one derived from err.
func fail(deps *cli.Deps, msg string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint == "" {
		hint = hintFor(err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

func hintFor(err error) string {
	var status *clockify.StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, clockify.ErrMissingCredentials):
		return "Set CLOCKIFY_API_KEY, CLOCKIFY_WORKSPACE_ID and CLOCKIFY_USER_ID, or add them to the config file ('clocksheet config init')"
	case errors.As(err, &status) && (status.Code == 401 || status.Code == 403):
		return "Check the Clockify API key and workspace id"
	case errors.Is(err, sheet.ErrUnknownSheet):
		return "Run 'clocksheet sheets' to list the sheets"
	case errors.Is(err, sheet.ErrEmptyWorkbook):
		return "Create a sheet first: clocksheet sheet add --this-week"
	case errors.Is(err, sheet.ErrSheetExists):
		return "Pick another name or remove the existing sheet"
	case errors.Is(err, storage.ErrNoBackup):
		return "Run 'clocksheet restore' without arguments to list the backups"
	case errors.Is(err, service.ErrNotLocal):
		return "Backups and validation only apply to workbook.backend = \"local\""
	}
	return ""
}
