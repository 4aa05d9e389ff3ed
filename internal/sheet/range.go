package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// cellPattern matches a single A1 cell reference (e.g., "C2", "AA100")
var cellPattern = regexp.MustCompile(`^([A-Za-z]{1,3})([1-9][0-9]*)$`)

// Range is a rectangular block of cells. Rows and columns are 0-based and inclusive.
type Range struct {
	Sheet    string
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// ParseRange parses an A1 reference such as "A12:G200", "C2" or "'Week 1'!A1:B2".
// A single cell yields a 1x1 range. Corners given in reverse order are normalized.
func ParseRange(a1 string) (Range, error) {
	var r Range
	ref := strings.TrimSpace(a1)
	if ref == "" {
		return r, fmt.Errorf("invalid range: reference cannot be empty")
	}

	if idx := strings.LastIndex(ref, "!"); idx != -1 {
		r.Sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
		if r.Sheet == "" {
			return r, fmt.Errorf("invalid range %q: empty sheet name", a1)
		}
	}

	startRef, endRef, isArea := strings.Cut(ref, ":")
	if !isArea {
		endRef = startRef
	}

	var err error
	r.StartRow, r.StartCol, err = parseCell(startRef)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", a1, err)
	}
	r.EndRow, r.EndCol, err = parseCell(endRef)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", a1, err)
	}

	if r.EndRow < r.StartRow {
		r.StartRow, r.EndRow = r.EndRow, r.StartRow
	}
	if r.EndCol < r.StartCol {
		r.StartCol, r.EndCol = r.EndCol, r.StartCol
	}
	return r, nil
}

// MustParseRange is like ParseRange but panics on error. Intended for constants.
func MustParseRange(a1 string) Range {
	r, err := ParseRange(a1)
	if err != nil {
		panic(err)
	}
	return r
}

func parseCell(ref string) (row, col int, err error) {
	m := cellPattern.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return 0, 0, fmt.Errorf("%q is not a cell reference (expected e.g. A1, C2, AA10)", ref)
	}

	for _, c := range strings.ToUpper(m[1]) {
		col = col*26 + int(c-'A'+1)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, err
	}
	return n - 1, col - 1, nil
}

// ColumnName returns the A1 column letters for a 0-based column index
func ColumnName(col int) string {
	name := ""
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}
	return name
}

// Rows returns the number of rows covered by the range
func (r Range) Rows() int { return r.EndRow - r.StartRow + 1 }

// Cols returns the number of columns covered by the range
func (r Range) Cols() int { return r.EndCol - r.StartCol + 1 }

// A1 renders the range without its sheet prefix (e.g., "A12:G200")
func (r Range) A1() string {
	start := ColumnName(r.StartCol) + strconv.Itoa(r.StartRow+1)
	if r.Rows() == 1 && r.Cols() == 1 {
		return start
	}
	return start + ":" + ColumnName(r.EndCol) + strconv.Itoa(r.EndRow+1)
}

// String renders the range with a quoted sheet prefix when one is set
func (r Range) String() string {
	if r.Sheet == "" {
		return r.A1()
	}
	return "'" + strings.ReplaceAll(r.Sheet, "'", "''") + "'!" + r.A1()
}

// InSheet returns a copy of the range bound to the given sheet
func (r Range) InSheet(name string) Range {
	r.Sheet = name
	return r
}

// Resize returns a range with the same top-left corner and the given size
func (r Range) Resize(rows, cols int) Range {
	r.EndRow = r.StartRow + rows - 1
	r.EndCol = r.StartCol + cols - 1
	return r
}

// Offset returns a range shifted by the given number of rows and columns
func (r Range) Offset(rows, cols int) Range {
	r.StartRow += rows
	r.EndRow += rows
	r.StartCol += cols
	r.EndCol += cols
	return r
}
