// Package service provides the operations behind clocksheet's commands.
// It ties the Clockify client, the workbook backends and the formatting
// packages together for both the CLI and the HTTP server.
package service

import (
	"context"
	"fmt"

	"github.com/xolan/clocksheet/internal/config"
	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/timesheet"
)

// API is the part of the Clockify client the services use
type API interface {
	TimeEntries(ctx context.Context, start, end string) ([]entry.TimeEntry, error)
	TimeEntriesRaw(ctx context.Context, start, end string) ([]byte, error)
	Projects(ctx context.Context) ([]entry.Project, error)
	Tags(ctx context.Context) ([]entry.Tag, error)
}

// Backupper is implemented by workbooks that can snapshot themselves
// before destructive writes
type Backupper interface {
	Backup(ctx context.Context) error
}

// Layout holds the parsed cell addresses of a weekly sheet
type Layout struct {
	Entries     sheet.Range
	Totals      sheet.Range
	Start       sheet.Range
	End         sheet.Range
	Description sheet.Range
}

// ParseLayout parses the A1 addresses of cfg
func ParseLayout(cfg config.LayoutConfig) (Layout, error) {
	var l Layout
	fields := []struct {
		name  string
		value string
		dst   *sheet.Range
	}{
		{"entry_range", cfg.EntryRange, &l.Entries},
		{"totals_range", cfg.TotalsRange, &l.Totals},
		{"start_cell", cfg.StartCell, &l.Start},
		{"end_cell", cfg.EndCell, &l.End},
		{"description_cell", cfg.DescriptionCell, &l.Description},
	}
	for _, f := range fields {
		r, err := sheet.ParseRange(f.value)
		if err != nil {
			return Layout{}, fmt.Errorf("layout.%s: %w", f.name, err)
		}
		*f.dst = r
	}
	return l, nil
}

// Window is the query window of a sheet as sent to Clockify
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SheetInfo describes one sheet of the workbook
type SheetInfo struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Previous string `json:"previous"`
}

// PullOptions adjusts a pull
type PullOptions struct {
	// Start and End replace the window read from the sheet when set
	Start string
	End   string
	// Totals rewrites the totals range even when layout.compute_totals is off
	Totals bool
}

// PullResult summarizes a pull
type PullResult struct {
	Sheet         string      `json:"sheet"`
	Window        Window      `json:"window"`
	Fetched       int         `json:"fetched"`
	Written       int         `json:"written"`
	Running       int         `json:"running"`
	Dropped       int         `json:"dropped"`
	ProofsKept    int         `json:"proofs_kept"`
	Totals        []TotalLine `json:"totals,omitempty"`
	TotalsDropped int         `json:"totals_dropped,omitempty"`
	// DroppedCategories did not fit the totals range; their cumulative
	// totals do not carry over to the next sheet.
	DroppedCategories []string `json:"dropped_categories,omitempty"`
}

// TotalLine is one rendered row of the totals range
type TotalLine struct {
	Category   string `json:"category"`
	Week       string `json:"week"`
	Cumulative string `json:"cumulative"`
	Entries    int    `json:"entries"`
}

func totalLines(totals []timesheet.CategoryTotal) []TotalLine {
	lines := make([]TotalLine, len(totals))
	for i, t := range totals {
		lines[i] = TotalLine{
			Category:   t.Category,
			Week:       entry.FormatClock(t.Week),
			Cumulative: entry.FormatClock(t.Cumulative),
			Entries:    t.EntryCount,
		}
	}
	return lines
}
