package sheet

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Range
	}{
		{"entry range", "A12:G200", Range{StartRow: 11, StartCol: 0, EndRow: 199, EndCol: 6}},
		{"totals range", "A6:C9", Range{StartRow: 5, StartCol: 0, EndRow: 8, EndCol: 2}},
		{"single cell", "C2", Range{StartRow: 1, StartCol: 2, EndRow: 1, EndCol: 2}},
		{"lowercase", "e6", Range{StartRow: 5, StartCol: 4, EndRow: 5, EndCol: 4}},
		{"double letters", "AA1:AB2", Range{StartRow: 0, StartCol: 26, EndRow: 1, EndCol: 27}},
		{"reversed corners", "C9:A6", Range{StartRow: 5, StartCol: 0, EndRow: 8, EndCol: 2}},
		{"sheet prefix", "Week 1!A1:B2", Range{Sheet: "Week 1", StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}},
		{"quoted sheet prefix", "'Week 1'!C3", Range{Sheet: "Week 1", StartRow: 2, StartCol: 2, EndRow: 2, EndCol: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			if err != nil {
				t.Fatalf("ParseRange(%q) returned unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	inputs := []string{"", "12", "A", "A0", "A1:", "1A", "!A1", "A1:B", "ABCD1"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseRange(input); err == nil {
				t.Errorf("ParseRange(%q) expected error, got nil", input)
			}
		})
	}
}

func TestRange_Dimensions(t *testing.T) {
	r := MustParseRange("A12:G200")
	if r.Rows() != 189 {
		t.Errorf("Rows() = %d, expected 189", r.Rows())
	}
	if r.Cols() != 7 {
		t.Errorf("Cols() = %d, expected 7", r.Cols())
	}
}

func TestRange_A1RoundTrip(t *testing.T) {
	for _, ref := range []string{"A12:G200", "C2", "AA1:AZ10", "Z99"} {
		if got := MustParseRange(ref).A1(); got != ref {
			t.Errorf("A1() of %q = %q", ref, got)
		}
	}
}

func TestRange_String(t *testing.T) {
	r := MustParseRange("A1:B2").InSheet("Bob's week")
	if got := r.String(); got != "'Bob''s week'!A1:B2" {
		t.Errorf("String() = %q", got)
	}
}

func TestRange_ResizeAndOffset(t *testing.T) {
	r := MustParseRange("A12:G200")

	if got := r.Resize(3, 7).A1(); got != "A12:G14" {
		t.Errorf("Resize(3, 7) = %q, expected A12:G14", got)
	}
	if got := r.Resize(3, 1).Offset(0, 5).A1(); got != "F12:F14" {
		t.Errorf("Resize(3, 1).Offset(0, 5) = %q, expected F12:F14", got)
	}
}

func TestColumnName(t *testing.T) {
	tests := map[int]string{0: "A", 6: "G", 25: "Z", 26: "AA", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for col, expected := range tests {
		if got := ColumnName(col); got != expected {
			t.Errorf("ColumnName(%d) = %q, expected %q", col, got, expected)
		}
	}
}
