package timesheet

import "github.com/xolan/clocksheet/internal/sheet"

// CompositeKey identifies a timesheet row across pulls
func CompositeKey(date, start string) string {
	return date + "T" + start
}

// CollectAnnotations maps the composite key of every row with a non-empty
// first cell to its proof cell. When two rows share a key the later row wins.
func CollectAnnotations(grid sheet.Grid, dateCol, startCol, proofCol int) map[string]string {
	notes := make(map[string]string)
	for _, row := range grid {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		key := CompositeKey(cell(row, dateCol), cell(row, startCol))
		notes[key] = cell(row, proofCol)
	}
	return notes
}

// ApplyAnnotations writes the stored proof into every row whose key is in
// notes and clears it in the others. It returns the number of matched rows.
func ApplyAnnotations(rows sheet.Grid, notes map[string]string, dateCol, startCol, proofCol int) int {
	matched := 0
	for i, row := range rows {
		if proofCol >= len(row) {
			grown := make([]string, proofCol+1)
			copy(grown, row)
			row = grown
			rows[i] = row
		}

		proof, ok := notes[CompositeKey(cell(row, dateCol), cell(row, startCol))]
		if ok {
			matched++
		}
		row[proofCol] = proof
	}
	return matched
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
