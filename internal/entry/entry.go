package entry

import "time"

// TimeEntry represents a single time entry as returned by the Clockify API
type TimeEntry struct {
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	ProjectID    string   `json:"projectId"`
	TagIDs       []string `json:"tagIds"`
	TimeInterval Interval `json:"timeInterval"`
}

// Interval holds the start/end pair of a time entry.
// End is nil while the timer is still running.
type Interval struct {
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end"`
	Duration string     `json:"duration"`
}

// Running reports whether the entry belongs to a timer that has not been stopped yet
func (e TimeEntry) Running() bool {
	return e.TimeInterval.End == nil
}

// Project is a Clockify workspace project
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"clientName,omitempty"`
	Archived   bool   `json:"archived,omitempty"`
}

// Tag is a Clockify workspace tag; tag names fill the timesheet category column
type Tag struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Archived bool   `json:"archived,omitempty"`
}

// Elapsed returns the recorded duration of a stopped entry. The duration
// token is used when present, otherwise the end-start difference.
func (e TimeEntry) Elapsed() time.Duration {
	if e.TimeInterval.Duration != "" {
		return time.Duration(ExtractDuration(e.TimeInterval.Duration).TotalSeconds()) * time.Second
	}
	if e.TimeInterval.End == nil {
		return 0
	}
	return e.TimeInterval.End.Sub(e.TimeInterval.Start)
}
