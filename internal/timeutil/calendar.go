package timeutil

import (
	"fmt"
	"time"
)

// now is swapped out in tests
var now = time.Now

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// StartOfWeek returns Monday 00:00:00 of the week containing t (ISO weeks).
// Sunday belongs to the week that started six days earlier.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// EndOfWeek returns Sunday 23:59:59.999999999 of the week containing t
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// ThisWeek returns Monday..Sunday of the current week in loc
func ThisWeek(loc *time.Location) (start, end time.Time) {
	t := now().In(loc)
	return StartOfWeek(t), EndOfWeek(t)
}

// LastWeek returns Monday..Sunday of the previous week in loc
func LastWeek(loc *time.Location) (start, end time.Time) {
	t := now().In(loc).AddDate(0, 0, -7)
	return StartOfWeek(t), EndOfWeek(t)
}

// WeekName returns the default sheet name for the week containing t,
// e.g. "Week 3".
func WeekName(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("Week %d", week)
}
