package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02", // ISO, preferred for ambiguous input
	"02/01/2006",
	"2-1-2006", // timesheet cells
}

// FormatDate renders the timesheet date column: D-M-YYYY without padding
func FormatDate(t time.Time) string {
	return t.Format("2-1-2006")
}

// FormatTimeOfDay renders the timesheet start column: H:M without padding
func FormatTimeOfDay(t time.Time) string {
	return fmt.Sprintf("%d:%d", t.Hour(), t.Minute())
}

// ParseDate parses YYYY-MM-DD, DD/MM/YYYY or D-M-YYYY and returns midnight
// of that day in loc.
func ParseDate(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, buildDateParseError(input)
}

var (
	yearOnlyRe   = regexp.MustCompile(`^\d{4}$`)
	isoPartialRe = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	dayMonthRe   = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}$`)
)

func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case dayMonthRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY or D-M-YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD, DD/MM/YYYY or D-M-YYYY, e.g., 2024-01-15)", input)
	}
}
