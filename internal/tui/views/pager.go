// Package views holds the content panes of the viewer.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/clocksheet/internal/tui/ui"
)

// PagerModel shows a block of text in a scrollable viewport
type PagerModel struct {
	title    string
	content  string
	err      error
	loading  bool
	viewport viewport.Model
	styles   ui.Styles
}

// NewPagerModel creates an empty pager
func NewPagerModel(title string, styles ui.Styles) PagerModel {
	return PagerModel{
		title:    title,
		loading:  true,
		viewport: viewport.New(0, 0),
		styles:   styles,
	}
}

// SetSize resizes the viewport; one line is kept for the title
func (m *PagerModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 1)
	m.refresh()
}

// SetLoading marks the pager as waiting for content
func (m *PagerModel) SetLoading() {
	m.loading = true
	m.refresh()
}

// SetContent replaces the text; a non-nil err is shown instead of it
func (m *PagerModel) SetContent(content string, err error) {
	m.loading = false
	m.content = content
	m.err = err
	m.refresh()
	m.viewport.GotoTop()
}

// Content returns the current text with table line endings normalized
func (m PagerModel) Content() string {
	return normalize(m.content)
}

// Err returns the load error, if any
func (m PagerModel) Err() error {
	return m.err
}

func (m *PagerModel) refresh() {
	switch {
	case m.loading:
		m.viewport.SetContent(m.styles.StatusHelp.Render("Loading..."))
	case m.err != nil:
		m.viewport.SetContent(m.styles.Error.Render("Error: " + m.err.Error()))
	default:
		m.viewport.SetContent(normalize(m.content))
	}
}

// Update handles scrolling and theme changes
func (m PagerModel) Update(msg tea.Msg) (PagerModel, tea.Cmd) {
	if msg, ok := msg.(ui.ThemeChangedMsg); ok {
		m.styles = msg.Styles
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the title line and the viewport
func (m PagerModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	return b.String()
}

// ScrollPercent reports how far the viewport is scrolled
func (m PagerModel) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

// normalize turns the CRLF row endings of markdown tables into plain newlines
func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
