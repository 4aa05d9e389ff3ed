// Package markdown renders timesheet grids as markdown tables and assembles
// the weekly report.
package markdown

import "strings"

const (
	// rowEnd terminates every table row
	rowEnd = "\r\n"
	// separatorCell is emitted once per visible column in the separator row
	separatorCell = "----|"
	// legacySkipIndex is the column dropped from wide tables whose headers do
	// not contain the skip label
	legacySkipIndex = 1
)

// SkipIndex returns the column index left out of a table. It is the position
// of skipLabel in headers when present. Otherwise tables wider than three
// columns drop column 1 and narrower tables drop nothing (-1).
func SkipIndex(headers []string, skipLabel string) int {
	if skipLabel != "" {
		for i, h := range headers {
			if h == skipLabel {
				return i
			}
		}
	}
	if len(headers) > 3 {
		return legacySkipIndex
	}
	return -1
}

// FormatTable renders headers and rows as a pipe-delimited markdown table.
// Rows whose first cell is empty are dropped. Only the first len(headers)
// cells of a row are used; missing cells render empty. The same skip index
// (see SkipIndex) is applied to the header, separator and data rows.
func FormatTable(headers []string, skipLabel string, rows [][]string) string {
	skip := SkipIndex(headers, skipLabel)

	var head, sep, body strings.Builder
	head.WriteString("|")
	sep.WriteString("|")
	for i, h := range headers {
		if i == skip {
			continue
		}
		head.WriteString(h + "|")
		sep.WriteString(separatorCell)
	}
	head.WriteString(rowEnd)
	sep.WriteString(rowEnd)

	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		body.WriteString("|")
		for col := range headers {
			if col == skip {
				continue
			}
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			body.WriteString(cell + " |")
		}
		body.WriteString(rowEnd)
	}

	return head.String() + sep.String() + body.String()
}

// Substitution replaces a table cell holding exactly Label with Image
type Substitution struct {
	Label string `toml:"label" yaml:"label"`
	Image string `toml:"image" yaml:"image"`
}

// ApplySubstitutions rewrites cells of a rendered table. A cell matches when
// its full text (as written by FormatTable, including the trailing space) is
// the label; it is replaced by the image without the trailing space.
// Substitutions are applied in order.
func ApplySubstitutions(table string, subs []Substitution) string {
	for _, s := range subs {
		if s.Label == "" {
			continue
		}
		table = strings.ReplaceAll(table, "|"+s.Label+" |", "|"+s.Image+"|")
	}
	return table
}
