package timeutil

import (
	"fmt"
	"time"
)

// APIBound converts a start or end cell value into a Clockify query bound.
// Text that parses as a date becomes RFC3339 UTC at the start of that day,
// or at its last second when end is set. Any other text is returned as is.
func APIBound(value string, loc *time.Location, end bool) string {
	d, err := ParseDate(value, loc)
	if err != nil {
		return value
	}
	if end {
		d = EndOfDay(d)
	}
	return d.UTC().Format(time.RFC3339)
}

// WindowFlags selects the week a new sheet covers
type WindowFlags struct {
	ThisWeek bool
	LastWeek bool
	From     string
	To       string
}

// IsSet reports whether any window flag was given
func (f WindowFlags) IsSet() bool {
	return f.ThisWeek || f.LastWeek || f.From != "" || f.To != ""
}

// Resolve turns the flags into a start and end time in loc. The flags are
// mutually exclusive; --to without --from is rejected, --from without --to
// ends on the Sunday of the --from week.
func (f WindowFlags) Resolve(loc *time.Location) (start, end time.Time, err error) {
	set := 0
	if f.ThisWeek {
		set++
	}
	if f.LastWeek {
		set++
	}
	if f.From != "" || f.To != "" {
		set++
	}
	if set > 1 {
		return time.Time{}, time.Time{}, fmt.Errorf("use only one of --this-week, --last-week or --from/--to")
	}

	switch {
	case f.ThisWeek:
		start, end = ThisWeek(loc)
		return start, end, nil
	case f.LastWeek:
		start, end = LastWeek(loc)
		return start, end, nil
	case f.From == "" && f.To != "":
		return time.Time{}, time.Time{}, fmt.Errorf("--to requires --from")
	case f.From == "":
		return time.Time{}, time.Time{}, fmt.Errorf("no window given")
	}

	start, err = ParseDate(f.From, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
	}

	if f.To == "" {
		return start, EndOfWeek(start), nil
	}

	to, err := ParseDate(f.To, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
	}
	end = EndOfDay(to)

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return start, end, nil
}
