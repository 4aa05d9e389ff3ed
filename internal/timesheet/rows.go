// Package timesheet reshapes Clockify time entries into timesheet rows,
// carries proof annotations across pulls and computes category totals.
package timesheet

import (
	"strings"
	"time"

	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/timeutil"
)

// Column positions of the entry range
const (
	ColDate = iota
	ColStart
	ColDuration
	ColCategory
	ColDescription
	ColProof
	ColProject

	// RowWidth is the number of columns a timesheet row fills
	RowWidth
)

// CategorySeparator joins the tag names of an entry
const CategorySeparator = ", "

// Lookup maps Clockify ids to display names
type Lookup struct {
	Projects map[string]string
	Tags     map[string]string
}

// NewLookup indexes projects and tags by id
func NewLookup(projects []entry.Project, tags []entry.Tag) Lookup {
	l := Lookup{
		Projects: make(map[string]string, len(projects)),
		Tags:     make(map[string]string, len(tags)),
	}
	for _, p := range projects {
		l.Projects[p.ID] = p.Name
	}
	for _, t := range tags {
		l.Tags[t.ID] = t.Name
	}
	return l
}

// Project returns the project name for id, or "" when unknown
func (l Lookup) Project(id string) string {
	return l.Projects[id]
}

// TagNames returns the names for ids in order. Unknown ids map to "".
func (l Lookup) TagNames(ids []string) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = l.Tags[id]
	}
	return names
}

// BuildRows converts entries into timesheet rows in input order. Running
// timers are left out and counted in skipped. The proof column is empty;
// ApplyAnnotations fills it.
func BuildRows(entries []entry.TimeEntry, lookup Lookup, loc *time.Location) (rows sheet.Grid, skipped int) {
	if loc == nil {
		loc = time.Local
	}

	rows = make(sheet.Grid, 0, len(entries))
	for _, e := range entries {
		if e.Running() {
			skipped++
			continue
		}

		start := e.TimeInterval.Start.In(loc)
		row := make([]string, RowWidth)
		row[ColDate] = timeutil.FormatDate(start)
		row[ColStart] = timeutil.FormatTimeOfDay(start)
		row[ColDuration] = entry.ExtractDuration(e.TimeInterval.Duration).String()
		row[ColCategory] = strings.Join(lookup.TagNames(e.TagIDs), CategorySeparator)
		row[ColDescription] = e.Description
		row[ColProject] = lookup.Project(e.ProjectID)
		rows = append(rows, row)
	}
	return rows, skipped
}
