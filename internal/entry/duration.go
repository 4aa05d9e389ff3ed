package entry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// absentUnit is rendered for a unit whose marker does not occur in the token
const absentUnit = "00"

// Duration holds the hour, minute and second components of a duration token
// exactly as they appear in the token. Components are never re-padded, so
// "PT5M" yields Minutes "5" and "PT120H" yields Hours "120".
type Duration struct {
	Hours   string
	Minutes string
	Seconds string
}

// ExtractDuration splits a Clockify duration token such as "PT2H15M" into its
// components. Each of the markers H, M and S is located independently; the
// run of digits directly in front of a marker is that unit's value. Missing
// markers default to "00".
//
// Examples: "PT1H5M9S" -> 1:5:9, "PT45M" -> 00:45:00, "" -> 00:00:00
func ExtractDuration(token string) Duration {
	return Duration{
		Hours:   unitValue(token, 'H'),
		Minutes: unitValue(token, 'M'),
		Seconds: unitValue(token, 'S'),
	}
}

// unitValue returns the digit run immediately preceding the first occurrence
// of marker in token.
func unitValue(token string, marker byte) string {
	idx := strings.IndexByte(token, marker)
	if idx == -1 {
		return absentUnit
	}

	start := idx
	for start > 0 && isDigit(token[start-1]) {
		start--
	}

	// Marker without digits in front of it still renders as a number
	if start == idx {
		return "0"
	}
	return token[start:idx]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String renders the duration as H:M:S
func (d Duration) String() string {
	return d.Hours + ":" + d.Minutes + ":" + d.Seconds
}

// TotalSeconds returns the duration in seconds.
// Components that fail to parse count as zero.
func (d Duration) TotalSeconds() int {
	h, _ := strconv.Atoi(d.Hours)
	m, _ := strconv.Atoi(d.Minutes)
	s, _ := strconv.Atoi(d.Seconds)
	return h*3600 + m*60 + s
}

// ParseClock parses a clock-style display value ("H:M:S" or "H:M") back into
// a time.Duration. Hours may exceed 24. An empty string is a zero duration.
func ParseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock value %q: expected H:M:S or H:M", s)
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var total time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid clock value %q: %q is not a number", s, p)
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}

// FormatClock renders d as H:MM:SS, the format used for computed totals
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
