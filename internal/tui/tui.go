// Package tui provides the terminal viewer for rendered timesheet reports.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/tui/ui"
	"github.com/xolan/clocksheet/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabReport Tab = iota
	TabEntries
)

var tabNames = []string{"Report", "Entries"}

// Source provides the content shown by the viewer
type Source interface {
	Sheets(ctx context.Context) ([]string, error)
	Report(ctx context.Context, sheet string) (string, error)
	AllReports(ctx context.Context) (string, error)
	Entries(ctx context.Context, sheet string) ([]byte, error)
}

// Options selects what the viewer opens on
type Options struct {
	// Sheet is the initial sheet; empty selects the last one
	Sheet string
	// All shows the joined report of every sheet in the Report tab
	All   bool
	Theme string
}

type sheetsLoadedMsg struct {
	names []string
	err   error
}

// Model is the root viewer model
type Model struct {
	ctx    context.Context
	source Source
	opts   Options

	sheets []string
	index  int
	err    error

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	reportView  views.PagerModel
	entriesView views.PagerModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a viewer model
func New(ctx context.Context, source Source, opts Options) Model {
	themeProvider := ui.NewThemeProvider(opts.Theme)
	styles := themeProvider.Styles()

	return Model{
		ctx:           ctx,
		source:        source,
		opts:          opts,
		index:         -1,
		activeTab:     TabReport,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          ui.DefaultKeyMap(),
		reportView:    views.NewPagerModel("Markdown", styles),
		entriesView:   views.NewPagerModel("Clockify time entries", styles),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadSheets()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabReport
			return m, nil

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabEntries
			return m, nil

		case key.Matches(msg, m.keys.NextSheet):
			return m.moveSheet(1)

		case key.Matches(msg, m.keys.PrevSheet):
			return m.moveSheet(-1)

		case key.Matches(msg, m.keys.Refresh):
			cmd := m.reload()
			return m, cmd

		case key.Matches(msg, m.keys.NextTheme):
			m.themeProvider.NextTheme()
			m.styles = m.themeProvider.Styles()
			changed := ui.ThemeChangedMsg{ThemeName: m.themeProvider.CurrentName(), Styles: m.styles}
			m.reportView, _ = m.reportView.Update(changed)
			m.entriesView, _ = m.entriesView.Update(changed)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// tab bar with border, status bar
		contentHeight := m.height - 4
		m.reportView.SetSize(m.width-2, contentHeight)
		m.entriesView.SetSize(m.width-2, contentHeight)
		return m, nil

	case sheetsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.reportView.SetContent("", msg.err)
			m.entriesView.SetContent("", msg.err)
			return m, nil
		}
		m.sheets = msg.names
		m.index = m.initialIndex()
		if m.index == -1 {
			m.err = fmt.Errorf("unknown sheet: %s", m.opts.Sheet)
			m.reportView.SetContent("", m.err)
			m.entriesView.SetContent("", m.err)
			return m, nil
		}
		cmd := m.reload()
		return m, cmd

	case ui.SheetLoadedMsg:
		if msg.Sheet != m.currentSheet() {
			return m, nil
		}
		m.reportView.SetContent(msg.Report, msg.ReportErr)
		m.entriesView.SetContent(msg.Entries, msg.EntriesErr)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case TabReport:
		m.reportView, cmd = m.reportView.Update(msg)
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabReport:
		b.WriteString(m.reportView.View())
	case TabEntries:
		b.WriteString(m.entriesView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.styles.App.Render(m.styles.Dialog.Render(m.helpText()))
	}
	return m.styles.App.Render(b.String())
}

func (m Model) initialIndex() int {
	if len(m.sheets) == 0 {
		return -1
	}
	if m.opts.Sheet == "" || m.opts.All {
		return len(m.sheets) - 1
	}
	for i, name := range m.sheets {
		if name == m.opts.Sheet {
			return i
		}
	}
	return -1
}

func (m Model) currentSheet() string {
	if m.index < 0 || m.index >= len(m.sheets) {
		return ""
	}
	return m.sheets[m.index]
}

// moveSheet steps through the workbook; the joined report has no sheet
func (m Model) moveSheet(delta int) (tea.Model, tea.Cmd) {
	if m.opts.All || len(m.sheets) == 0 {
		return m, nil
	}
	next := m.index + delta
	if next < 0 || next >= len(m.sheets) {
		return m, nil
	}
	m.index = next
	cmd := m.reload()
	return m, cmd
}

func (m *Model) reload() tea.Cmd {
	sheet := m.currentSheet()
	if sheet == "" {
		return nil
	}
	m.reportView.SetLoading()
	m.entriesView.SetLoading()
	return m.loadSheet(sheet)
}

func (m Model) loadSheets() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		names, err := source.Sheets(ctx)
		return sheetsLoadedMsg{names: names, err: err}
	}
}

func (m Model) loadSheet(sheet string) tea.Cmd {
	ctx, source, all := m.ctx, m.source, m.opts.All
	return func() tea.Msg {
		msg := ui.SheetLoadedMsg{Sheet: sheet}
		if all {
			msg.Report, msg.ReportErr = source.AllReports(ctx)
		} else {
			msg.Report, msg.ReportErr = source.Report(ctx, sheet)
		}
		raw, err := source.Entries(ctx, sheet)
		msg.Entries, msg.EntriesErr = string(raw), err
		return msg
	}
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}

	label := m.currentSheet()
	if m.opts.All {
		label = "All sheets"
	} else if label != "" {
		label = fmt.Sprintf("%s (%d/%d)", label, m.index+1, len(m.sheets))
	}
	tabs = append(tabs, m.styles.SheetName.Render(label))

	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderStatusBar() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		if m.opts.All && (b.Help().Key == "[" || b.Help().Key == "]") {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s",
			m.styles.StatusKey.Render(b.Help().Key),
			m.styles.StatusHelp.Render(b.Help().Desc)))
	}
	content := strings.Join(parts, "  ")

	if padding := m.width - 2 - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) helpText() string {
	var help strings.Builder
	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")
	help.WriteString(m.styles.Label.Render("Sheets:"))
	help.WriteString("\n")
	help.WriteString("  [ / ]      Previous/next sheet\n")
	help.WriteString("  r          Reload from the workbook\n")
	help.WriteString("\n")
	help.WriteString(m.styles.Label.Render("View:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-2    Switch tabs\n")
	help.WriteString("  j/k        Scroll\n")
	help.WriteString("  PgUp/PgDn  Page\n")
	help.WriteString("  t          Next theme (" + m.themeProvider.CurrentName() + ")\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")
	help.WriteString(m.styles.StatusHelp.Render("Press ? to close"))
	return help.String()
}

// Run starts the viewer on the alternate screen
func Run(ctx context.Context, source Source, opts Options) error {
	p := tea.NewProgram(New(ctx, source, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// FromServices adapts the application services to a Source
func FromServices(s *service.Services) Source {
	return servicesSource{s}
}

type servicesSource struct {
	s *service.Services
}

func (src servicesSource) Sheets(ctx context.Context) ([]string, error) {
	infos, err := src.s.Workbook.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names, nil
}

func (src servicesSource) Report(ctx context.Context, sheet string) (string, error) {
	return src.s.Report.Render(ctx, sheet)
}

func (src servicesSource) AllReports(ctx context.Context) (string, error) {
	return src.s.Report.RenderAll(ctx)
}

func (src servicesSource) Entries(ctx context.Context, sheet string) ([]byte, error) {
	return src.s.Catalog.Entries(ctx, sheet)
}
