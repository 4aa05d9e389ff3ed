package ui

// SheetLoadedMsg carries the rendered content of a sheet. Each part has its
// own error so a failing Clockify call does not hide the report.
type SheetLoadedMsg struct {
	Sheet      string
	Report     string
	ReportErr  error
	Entries    string
	EntriesErr error
}

// ThemeChangedMsg is broadcast to the views when the theme changes
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}
