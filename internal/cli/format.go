// Package cli provides the CLI presentation layer for clocksheet.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"

	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/storage"
)

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if n := len(word); n > 1 && word[n-1] == 'y' && !strings.ContainsRune("aeiou", rune(word[n-2])) {
		return word[:n-1] + "ies"
	}
	return word + "s"
}

// FormatProjects renders projects as an aligned "name | id" table
func FormatProjects(projects []entry.Project) string {
	if len(projects) == 0 {
		return "No projects found\n"
	}

	nameWidth := len("Name")
	for _, p := range projects {
		nameWidth = max(nameWidth, len(projectLabel(p)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s | %s\n", nameWidth, "Name", "ID")
	fmt.Fprintf(&b, "%s-+-%s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", 24))
	for _, p := range projects {
		fmt.Fprintf(&b, "%-*s | %s\n", nameWidth, projectLabel(p), p.ID)
	}
	return b.String()
}

func projectLabel(p entry.Project) string {
	label := p.Name
	if p.ClientName != "" {
		label += " (" + p.ClientName + ")"
	}
	if p.Archived {
		label += " [archived]"
	}
	return label
}

// FormatSheets renders the sheet list with indices and previous sheets
func FormatSheets(infos []service.SheetInfo) string {
	if len(infos) == 0 {
		return "Workbook has no sheets\n"
	}

	nameWidth := len("Sheet")
	for _, info := range infos {
		nameWidth = max(nameWidth, len(info.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%5s  %-*s  %s\n", "Index", nameWidth, "Sheet", "Previous")
	for _, info := range infos {
		fmt.Fprintf(&b, "%5d  %-*s  %s\n", info.Index, nameWidth, info.Name, info.Previous)
	}
	return b.String()
}

// FormatPullResult summarizes a pull for the terminal
func FormatPullResult(r service.PullResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pulled %s (%s .. %s)\n", r.Sheet, r.Window.Start, r.Window.End)
	fmt.Fprintf(&b, "  Fetched:      %d %s\n", r.Fetched, Pluralize("entry", r.Fetched))
	fmt.Fprintf(&b, "  Written:      %d %s\n", r.Written, Pluralize("row", r.Written))
	fmt.Fprintf(&b, "  Proofs kept:  %d\n", r.ProofsKept)
	if r.Running > 0 {
		fmt.Fprintf(&b, "  Skipped:      %d running %s\n", r.Running, Pluralize("timer", r.Running))
	}
	if r.Dropped > 0 {
		fmt.Fprintf(&b, "  Dropped:      %d %s (entry range full)\n", r.Dropped, Pluralize("row", r.Dropped))
	}

	if len(r.Totals) > 0 {
		width := len("Category")
		for _, t := range r.Totals {
			width = max(width, len(t.Category))
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %-*s  %10s  %10s\n", width, "Category", "Week", "Total")
		for _, t := range r.Totals {
			fmt.Fprintf(&b, "  %-*s  %10s  %10s\n", width, t.Category, t.Week, t.Cumulative)
		}
		if r.TotalsDropped > 0 {
			fmt.Fprintf(&b, "  (%d %s did not fit the totals range", r.TotalsDropped, Pluralize("category", r.TotalsDropped))
			if len(r.DroppedCategories) > 0 {
				fmt.Fprintf(&b, ": %s", strings.Join(r.DroppedCategories, ", "))
			}
			b.WriteString(")\n")
		}
	}
	return b.String()
}

// FormatBackups lists backups, marking the most recent one
func FormatBackups(backups []storage.BackupInfo) string {
	var b strings.Builder
	for _, backup := range backups {
		sheets := fmt.Sprintf("%d %s", backup.Sheets, Pluralize("sheet", backup.Sheets))
		if backup.Sheets < 0 {
			sheets = "unreadable"
		}
		if backup.Number == 1 {
			fmt.Fprintf(&b, "  %d: %s (%s, most recent)\n", backup.Number, backup.Path, sheets)
		} else {
			fmt.Fprintf(&b, "  %d: %s (%s)\n", backup.Number, backup.Path, sheets)
		}
	}
	return b.String()
}

// FormatHealth renders the result of a workbook validation
func FormatHealth(path string, h storage.Health) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workbook file: %s\n", path)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	if !h.Exists {
		b.WriteString("Status: No workbook file yet (it is created by the first write)\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Format version: %d\n", h.Version)
	fmt.Fprintf(&b, "Sheets:         %d\n", h.Sheets)
	fmt.Fprintf(&b, "Filled cells:   %d\n", h.Cells)

	if len(h.Warnings) > 0 {
		b.WriteString(strings.Repeat("=", 50) + "\n")
		b.WriteString("Warnings:\n")
		for _, w := range h.Warnings {
			fmt.Fprintf(&b, "  %s\n", w)
		}
	}

	b.WriteString(strings.Repeat("=", 50) + "\n")
	if h.Valid {
		b.WriteString("Status: ✓ Workbook file is healthy\n")
	} else {
		fmt.Fprintf(&b, "Status: ⚠ Workbook file is damaged: %s\n", h.Problem)
	}
	return b.String()
}
