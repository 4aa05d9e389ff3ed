package timesheet

import (
	"sort"
	"strings"
	"time"

	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/sheet"
)

// Untagged is the category of entries without tags
const Untagged = "(geen)"

// CategoryTotal is one row of the totals range
type CategoryTotal struct {
	Category   string
	Week       time.Duration
	Cumulative time.Duration
	EntryCount int
}

// ComputeTotals groups stopped entries by tag name and sums their durations.
// Entries with several tags count toward each; untagged entries count as
// Untagged. previous holds the cumulative totals of the preceding sheet and
// is added to each category; categories only present in previous are kept
// with a zero week total. Results are sorted by week total, then by name,
// so a truncated totals range always keeps the busiest categories of the
// week and drops carried-over ones first.
func ComputeTotals(entries []entry.TimeEntry, lookup Lookup, previous map[string]time.Duration) []CategoryTotal {
	byCategory := make(map[string]*CategoryTotal)
	get := func(name string) *CategoryTotal {
		if t, ok := byCategory[name]; ok {
			return t
		}
		t := &CategoryTotal{Category: name}
		byCategory[name] = t
		return t
	}

	for _, e := range entries {
		if e.Running() {
			continue
		}
		elapsed := e.Elapsed()

		names := lookup.TagNames(e.TagIDs)
		if len(names) == 0 {
			names = []string{Untagged}
		}
		for _, name := range names {
			if name == "" {
				name = Untagged
			}
			t := get(name)
			t.Week += elapsed
			t.EntryCount++
		}
	}

	for name, d := range previous {
		get(name).Cumulative += d
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, t := range byCategory {
		t.Cumulative += t.Week
		totals = append(totals, *t)
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Week != totals[j].Week {
			return totals[i].Week > totals[j].Week
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// ParseTotals reads category -> cumulative total from a totals range grid
// (columns: category, week, cumulative). Rows without a category or with an
// unreadable cumulative value are ignored.
func ParseTotals(grid sheet.Grid) map[string]time.Duration {
	out := make(map[string]time.Duration)
	for _, row := range grid {
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}
		d, err := entry.ParseClock(cell(row, 2))
		if err != nil {
			continue
		}
		out[name] += d
	}
	return out
}

// TotalsGrid renders totals as rows of [category, week, cumulative]
func TotalsGrid(totals []CategoryTotal) sheet.Grid {
	g := make(sheet.Grid, len(totals))
	for i, t := range totals {
		g[i] = []string{t.Category, entry.FormatClock(t.Week), entry.FormatClock(t.Cumulative)}
	}
	return g
}
