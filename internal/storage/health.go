package storage

import (
	"errors"
	"fmt"
	"os"
)

// Health summarizes the state of a workbook file
type Health struct {
	Exists   bool
	Valid    bool
	Version  int
	Sheets   int
	Cells    int // non-empty cells over all sheets
	Problem  string
	Warnings []string
}

// ValidateWorkbook inspects the workbook file at path. A file that cannot
// be parsed is reported through Health.Problem, not as an error; errors are
// reserved for I/O failures.
func ValidateWorkbook(path string) (Health, error) {
	var h Health

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}
		return h, err
	}
	h.Exists = true

	doc, err := decode(data)
	if err != nil {
		h.Problem = err.Error()
		return h, nil
	}

	h.Valid = true
	h.Version = doc.Version
	h.Sheets = len(doc.Sheets)

	seen := make(map[string]bool)
	for i, p := range doc.Sheets {
		switch {
		case p.Name == "":
			h.Warnings = append(h.Warnings, fmt.Sprintf("sheet %d has no name", i+1))
		case seen[p.Name]:
			h.Warnings = append(h.Warnings, fmt.Sprintf("duplicate sheet name %q", p.Name))
		}
		seen[p.Name] = true

		for _, row := range p.Cells {
			for _, c := range row {
				if c != "" {
					h.Cells++
				}
			}
		}
	}
	return h, nil
}
