// Package sheet defines the workbook abstraction clocksheet reads from and
// writes to: ordered, named sheets holding grids of display strings.
package sheet

import (
	"context"
	"errors"
	"fmt"
)

// NoPreviousSheet is returned by PreviousName for the first sheet of a workbook
const NoPreviousSheet = "#NO_PREVIOUS_SHEET"

var (
	// ErrUnknownSheet is returned when a sheet name does not exist in the workbook
	ErrUnknownSheet = errors.New("unknown sheet")
	// ErrSheetExists is returned when adding a sheet whose name is taken
	ErrSheetExists = errors.New("sheet already exists")
	// ErrEmptyWorkbook is returned when an operation needs at least one sheet
	ErrEmptyWorkbook = errors.New("workbook has no sheets")
)

// Grid is a rectangular block of display values, indexed [row][col]
type Grid [][]string

// NewGrid returns an empty grid with the given dimensions
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]string, cols)
	}
	return g
}

// Cell returns the value at row, col or "" when out of bounds
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Fit returns a copy of g padded or truncated to exactly rows x cols
func (g Grid) Fit(rows, cols int) Grid {
	out := NewGrid(rows, cols)
	for r := 0; r < rows && r < len(g); r++ {
		copy(out[r], g[r])
	}
	return out
}

// Workbook is implemented by every workbook backend.
// Read always returns a grid of exactly r.Rows() x r.Cols() cells.
// Write places g at the top-left corner of r; cells outside r are not touched.
type Workbook interface {
	Sheets(ctx context.Context) ([]string, error)
	Read(ctx context.Context, sheet string, r Range) (Grid, error)
	Write(ctx context.Context, sheet string, r Range, g Grid) error
	Clear(ctx context.Context, sheet string, r Range) error
	AddSheet(ctx context.Context, name string) error
}

// PreviousName returns the name of the sheet directly left of current.
// For the first sheet, or a sheet that is not in the list, it returns the
// NoPreviousSheet placeholder.
func PreviousName(sheets []string, current string) string {
	idx := IndexOf(sheets, current)
	if idx <= 0 {
		return NoPreviousSheet
	}
	return sheets[idx-1]
}

// IndexOf returns the position of name in sheets, or -1
func IndexOf(sheets []string, name string) int {
	for i, s := range sheets {
		if s == name {
			return i
		}
	}
	return -1
}

// ReadCell reads a single cell's display value
func ReadCell(ctx context.Context, wb Workbook, sheet string, r Range) (string, error) {
	g, err := wb.Read(ctx, sheet, r.Resize(1, 1))
	if err != nil {
		return "", err
	}
	return g.Cell(0, 0), nil
}

// WriteCell writes a single cell's value
func WriteCell(ctx context.Context, wb Workbook, sheet string, r Range, value string) error {
	return wb.Write(ctx, sheet, r.Resize(1, 1), Grid{{value}})
}

// Resolve returns name when it is non-empty and exists, or the last sheet
// of the workbook when name is empty.
func Resolve(ctx context.Context, wb Workbook, name string) (string, error) {
	sheets, err := wb.Sheets(ctx)
	if err != nil {
		return "", err
	}
	if len(sheets) == 0 {
		return "", ErrEmptyWorkbook
	}
	if name == "" {
		return sheets[len(sheets)-1], nil
	}
	if IndexOf(sheets, name) == -1 {
		return "", fmt.Errorf("%w: %s", ErrUnknownSheet, name)
	}
	return name, nil
}
