package ui

import (
	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when tui.theme is empty or unknown
const DefaultTheme = "dracula"

// ThemeProvider holds the bubbletint registry the viewer styles come from
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider selects initialTheme, falling back to DefaultTheme (or the
// first known tint) when it is empty or unknown.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}
	return &ThemeProvider{registry: registry}
}

// SetTheme switches to the tint with the given id and reports whether it exists
func (tp *ThemeProvider) SetTheme(id string) bool {
	return tp.registry.SetTintID(id)
}

// NextTheme cycles to the next tint and returns its id
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// CurrentName returns the id of the current tint
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// Styles returns styles for the current tint
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
