package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xolan/clocksheet/internal/config"
	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/storage"
	"github.com/xolan/clocksheet/internal/timesheet"
	"github.com/xolan/clocksheet/internal/timeutil"
)

type fakeAPI struct {
	entries  []entry.TimeEntry
	projects []entry.Project
	tags     []entry.Tag
	raw      []byte
	err      error

	start, end string
}

func (f *fakeAPI) TimeEntries(ctx context.Context, start, end string) ([]entry.TimeEntry, error) {
	f.start, f.end = start, end
	return f.entries, f.err
}

func (f *fakeAPI) TimeEntriesRaw(ctx context.Context, start, end string) ([]byte, error) {
	f.start, f.end = start, end
	return f.raw, f.err
}

func (f *fakeAPI) Projects(ctx context.Context) ([]entry.Project, error) {
	return f.projects, nil
}

func (f *fakeAPI) Tags(ctx context.Context) ([]entry.Tag, error) {
	return f.tags, nil
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	return cfg
}

func newTestServices(t *testing.T, cfg config.Config, wb sheet.Workbook, api API) *Services {
	t.Helper()
	svc, err := NewServicesWith(cfg, filepath.Join(t.TempDir(), "config.toml"), wb, "", api, nil)
	if err != nil {
		t.Fatalf("NewServicesWith() error = %v", err)
	}
	return svc
}

// seedWeek creates a sheet with the default start and end cells filled in
func seedWeek(t *testing.T, wb sheet.Workbook, name, start, end string) {
	t.Helper()
	ctx := context.Background()
	if err := sheet.WriteCell(ctx, wb, name, sheet.MustParseRange("C2"), start); err != nil {
		t.Fatal(err)
	}
	if err := sheet.WriteCell(ctx, wb, name, sheet.MustParseRange("C3"), end); err != nil {
		t.Fatal(err)
	}
}

func stoppedEntry(desc, project string, tags []string, start time.Time, token string, length time.Duration) entry.TimeEntry {
	end := start.Add(length)
	return entry.TimeEntry{
		Description:  desc,
		ProjectID:    project,
		TagIDs:       tags,
		TimeInterval: entry.Interval{Start: start, End: &end, Duration: token},
	}
}

func weekAPI() *fakeAPI {
	day := time.Date(2024, time.January, 1, 9, 5, 0, 0, time.UTC)
	return &fakeAPI{
		entries: []entry.TimeEntry{
			stoppedEntry("Standup", "p1", []string{"t1"}, day, "PT1H5M9S", time.Hour+5*time.Minute+9*time.Second),
			stoppedEntry("Reading", "p2", nil, day.Add(3*time.Hour), "PT45M", 45*time.Minute),
			{Description: "Running", TimeInterval: entry.Interval{Start: day.Add(5 * time.Hour)}},
		},
		projects: []entry.Project{{ID: "p1", Name: "Clocksheet"}, {ID: "p2", Name: "Admin"}},
		tags:     []entry.Tag{{ID: "t1", Name: "R2D2"}},
	}
}

func TestPull(t *testing.T) {
	ctx := context.Background()
	wb := sheet.NewMemory("Template", "Week 1")
	seedWeek(t, wb, "Week 1", "2024-01-01", "2024-01-07")

	// stale rows: one matching the standup entry with a proof, one that disappears
	old := sheet.Grid{
		{"1-1-2024", "9:5", "0:30:00", "", "old", "meeting-notes.pdf", ""},
		{"2-1-2024", "8:0", "1:00:00", "", "gone", "lost proof", ""},
	}
	if err := wb.Write(ctx, "Week 1", sheet.MustParseRange("A12:G13"), old); err != nil {
		t.Fatal(err)
	}

	api := weekAPI()
	svc := newTestServices(t, testConfig(), wb, api)

	result, err := svc.Timesheet.Pull(ctx, "", PullOptions{})
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}

	if result.Sheet != "Week 1" {
		t.Errorf("Sheet = %q, want Week 1", result.Sheet)
	}
	if api.start != "2024-01-01T00:00:00Z" || api.end != "2024-01-07T23:59:59Z" {
		t.Errorf("window = %q..%q", api.start, api.end)
	}
	if result.Fetched != 3 || result.Written != 2 || result.Running != 1 || result.ProofsKept != 1 {
		t.Errorf("unexpected result: %+v", result)
	}

	got, err := wb.Read(ctx, "Week 1", sheet.MustParseRange("A12:G14"))
	if err != nil {
		t.Fatal(err)
	}
	want := sheet.Grid{
		{"1-1-2024", "9:5", "1:5:9", "R2D2", "Standup", "meeting-notes.pdf", "Clocksheet"},
		{"1-1-2024", "12:5", "00:45:00", "", "Reading", "", "Admin"},
		{"", "", "", "", "", "", ""},
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, got[i][j], want[i][j])
			}
		}
	}
	if len(result.Totals) != 0 {
		t.Errorf("totals written although disabled: %+v", result.Totals)
	}
}

func TestPullWindowOverride(t *testing.T) {
	wb := sheet.NewMemory("Template", "Week 1")
	seedWeek(t, wb, "Week 1", "2024-01-01", "2024-01-07")
	api := weekAPI()
	svc := newTestServices(t, testConfig(), wb, api)

	result, err := svc.Timesheet.Pull(context.Background(), "Week 1", PullOptions{Start: "a", End: "b"})
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if api.start != "a" || api.end != "b" {
		t.Errorf("window = %q..%q, want a..b", api.start, api.end)
	}
	if result.Window != (Window{Start: "a", End: "b"}) {
		t.Errorf("Window = %+v", result.Window)
	}
}

func TestPullVerbatimWindow(t *testing.T) {
	wb := sheet.NewMemory("Week 1")
	seedWeek(t, wb, "Week 1", "2024-01-01T00:00:00.000Z", "2024-01-07T23:59:59.000Z")
	api := weekAPI()
	svc := newTestServices(t, testConfig(), wb, api)

	if _, err := svc.Timesheet.Pull(context.Background(), "", PullOptions{}); err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if api.start != "2024-01-01T00:00:00.000Z" {
		t.Errorf("start = %q, want verbatim cell text", api.start)
	}
}

func TestPullTotals(t *testing.T) {
	ctx := context.Background()
	wb := sheet.NewMemory("Template", "Week 1", "Week 2")
	seedWeek(t, wb, "Week 2", "2024-01-01", "2024-01-07")
	if err := wb.Write(ctx, "Week 1", sheet.MustParseRange("A6:C7"), sheet.Grid{
		{"R2D2", "1:00:00", "3:00:00"},
		{"Legacy", "0:30:00", "2:00:00"},
	}); err != nil {
		t.Fatal(err)
	}

	svc := newTestServices(t, testConfig(), wb, weekAPI())
	result, err := svc.Timesheet.Pull(ctx, "Week 2", PullOptions{Totals: true})
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}

	got, err := wb.Read(ctx, "Week 2", sheet.MustParseRange("A6:C9"))
	if err != nil {
		t.Fatal(err)
	}
	want := sheet.Grid{
		{"R2D2", "1:05:09", "4:05:09"},
		{"(geen)", "0:45:00", "0:45:00"},
		{"Legacy", "0:00:00", "2:00:00"},
		{"", "", ""},
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("totals [%d][%d] = %q, want %q", i, j, got[i][j], want[i][j])
			}
		}
	}
	if len(result.Totals) != 3 || result.Totals[0].Cumulative != "4:05:09" {
		t.Errorf("Totals = %+v", result.Totals)
	}
}

func TestPullTotalsFirstSheet(t *testing.T) {
	wb := sheet.NewMemory("Week 1")
	seedWeek(t, wb, "Week 1", "2024-01-01", "2024-01-07")
	cfg := testConfig()
	cfg.Layout.ComputeTotals = true
	svc := newTestServices(t, cfg, wb, weekAPI())

	result, err := svc.Timesheet.Pull(context.Background(), "", PullOptions{})
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if len(result.Totals) != 2 || result.Totals[0].Week != result.Totals[0].Cumulative {
		t.Errorf("Totals = %+v", result.Totals)
	}
}

func TestPullDropsOverflow(t *testing.T) {
	ctx := context.Background()
	wb := sheet.NewMemory("Week 1")
	seedWeek(t, wb, "Week 1", "2024-01-01", "2024-01-07")
	cfg := testConfig()
	cfg.Layout.EntryRange = "A12:G12"
	cfg.Layout.TotalsRange = "A6:C6"
	svc := newTestServices(t, cfg, wb, weekAPI())

	result, err := svc.Timesheet.Pull(ctx, "", PullOptions{Totals: true})
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if result.Written != 1 || result.Dropped != 1 {
		t.Errorf("Written = %d, Dropped = %d", result.Written, result.Dropped)
	}
	if result.TotalsDropped != 1 {
		t.Errorf("TotalsDropped = %d, want 1", result.TotalsDropped)
	}
	if len(result.DroppedCategories) != 1 || result.DroppedCategories[0] != timesheet.Untagged {
		t.Errorf("DroppedCategories = %v, want [%s]", result.DroppedCategories, timesheet.Untagged)
	}
	kept, _ := sheet.ReadCell(ctx, wb, "Week 1", sheet.MustParseRange("A6"))
	if kept != "R2D2" {
		t.Errorf("kept category = %q, want the busiest one (R2D2)", kept)
	}
	below, _ := sheet.ReadCell(ctx, wb, "Week 1", sheet.MustParseRange("A13"))
	if below != "" {
		t.Errorf("row below the entry range was written: %q", below)
	}
}

func TestPullAPIErrorLeavesSheet(t *testing.T) {
	ctx := context.Background()
	wb := sheet.NewMemory("Week 1")
	seedWeek(t, wb, "Week 1", "2024-01-01", "2024-01-07")
	if err := sheet.WriteCell(ctx, wb, "Week 1", sheet.MustParseRange("A12"), "keep"); err != nil {
		t.Fatal(err)
	}

	api := weekAPI()
	api.err = errors.New("boom")
	svc := newTestServices(t, testConfig(), wb, api)

	if _, err := svc.Timesheet.Pull(ctx, "", PullOptions{}); err == nil {
		t.Fatal("Pull() should fail when the API fails")
	}
	got, _ := sheet.ReadCell(ctx, wb, "Week 1", sheet.MustParseRange("A12"))
	if got != "keep" {
		t.Errorf("entry range modified after failure: %q", got)
	}
}

func TestPullUnknownSheet(t *testing.T) {
	svc := newTestServices(t, testConfig(), sheet.NewMemory("Week 1"), weekAPI())
	_, err := svc.Timesheet.Pull(context.Background(), "Week 9", PullOptions{})
	if !errors.Is(err, sheet.ErrUnknownSheet) {
		t.Errorf("error = %v, want ErrUnknownSheet", err)
	}
}

func TestPullLocalBackup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workbook.json")
	wb, err := storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := wb.AddSheet(ctx, "Week 1"); err != nil {
		t.Fatal(err)
	}
	seedWeek(t, wb, "Week 1", "2024-01-01", "2024-01-07")

	svc, err := NewServicesWith(testConfig(), "", wb, path, weekAPI(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Timesheet.Pull(ctx, "", PullOptions{}); err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if _, err := os.Stat(storage.BackupPath(path, 1)); err != nil {
		t.Errorf("expected backup before pull: %v", err)
	}
}

func writeReportSheet(t *testing.T, wb sheet.Workbook, name, description string) {
	t.Helper()
	ctx := context.Background()
	if err := wb.Write(ctx, name, sheet.MustParseRange("A12:G13"), sheet.Grid{
		{"1-1-2024", "9:5", "1:5:9", "R2D2", "Standup", "notes", "Clocksheet"},
		{"1-1-2024", "12:5", "00:45:00", "", "Reading", "", "Admin"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := wb.Write(ctx, name, sheet.MustParseRange("A6:C6"), sheet.Grid{{"R2D2", "1:05:09", "4:05:09"}}); err != nil {
		t.Fatal(err)
	}
	if err := sheet.WriteCell(ctx, wb, name, sheet.MustParseRange("E6"), description); err != nil {
		t.Fatal(err)
	}
}

func TestReportRender(t *testing.T) {
	wb := sheet.NewMemory("Template", "Week 1")
	writeReportSheet(t, wb, "Week 1", "  Sprint review  ")
	svc := newTestServices(t, testConfig(), wb, weekAPI())

	out, err := svc.Report.Render(context.Background(), "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"## Week 1",
		">   Sprint review  \n",
		"|Onderdeel|Deze week|Totaal|\r\n",
		"|R2D2 |1:05:09 |4:05:09 |\r\n",
		"|Datum|Duur|Categorie|Omschrijving|Details + Bewijslast|_(C)_|\r\n",
		"|1-1-2024 |00:45:00 | |Reading | |Admin |\r\n",
		`|![S](`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "9:5") {
		t.Error("start time column should be skipped")
	}
}

func TestReportRenderAll(t *testing.T) {
	wb := sheet.NewMemory("Template", "Week 1", "Week 2")
	writeReportSheet(t, wb, "Week 1", "first")
	writeReportSheet(t, wb, "Week 2", "second")
	svc := newTestServices(t, testConfig(), wb, weekAPI())

	out, err := svc.Report.RenderAll(context.Background())
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}

	w2 := strings.Index(out, "## Week 2")
	w1 := strings.Index(out, "## Week 1")
	if w2 == -1 || w1 == -1 || w2 > w1 {
		t.Errorf("expected Week 2 before Week 1:\n%s", out)
	}
	if strings.Contains(out, "## Template") {
		t.Error("first sheet should not be rendered")
	}
	if strings.Count(out, "<br>") != 2 {
		t.Errorf("expected a separator after each report, got %d", strings.Count(out, "<br>"))
	}
}

func TestReportTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tmpl")
	if err := os.WriteFile(path, []byte("# {{.Week}}: {{.Description}}"), 0644); err != nil {
		t.Fatal(err)
	}
	wb := sheet.NewMemory("Week 1")
	writeReportSheet(t, wb, "Week 1", "custom")
	cfg := testConfig()
	cfg.Report.TemplateFile = path
	svc := newTestServices(t, cfg, wb, weekAPI())

	out, err := svc.Report.Render(context.Background(), "Week 1")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "# Week 1: custom" {
		t.Errorf("Render() = %q", out)
	}
}

func TestWorkbookPreviousAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, testConfig(), sheet.NewMemory("Template", "Week 1", "Week 2"), weekAPI())

	tests := []struct {
		name string
		want string
	}{
		{"", "Week 1"},
		{"Week 2", "Week 1"},
		{"Week 1", "Template"},
		{"Template", sheet.NoPreviousSheet},
	}
	for _, tt := range tests {
		got, err := svc.Workbook.Previous(ctx, tt.name)
		if err != nil {
			t.Fatalf("Previous(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Previous(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	infos, err := svc.Workbook.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 3 || infos[2] != (SheetInfo{Index: 2, Name: "Week 2", Previous: "Week 1"}) {
		t.Errorf("List() = %+v", infos)
	}
}

func TestWorkbookCells(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, testConfig(), sheet.NewMemory("Week 1", "Week 2"), weekAPI())

	if err := svc.Workbook.SetCell(ctx, "", "F12", "receipt.png"); err != nil {
		t.Fatalf("SetCell() error = %v", err)
	}
	got, err := svc.Workbook.Cell(ctx, "Week 2", "F12")
	if err != nil || got != "receipt.png" {
		t.Errorf("Cell() = %q, %v", got, err)
	}

	if err := svc.Workbook.SetCell(ctx, "Week 2", "'Week 1'!B2", "x"); err != nil {
		t.Fatalf("SetCell() error = %v", err)
	}
	got, _ = svc.Workbook.Cell(ctx, "", "'Week 1'!B2")
	if got != "x" {
		t.Errorf("sheet prefix ignored, got %q", got)
	}

	if _, err := svc.Workbook.Cell(ctx, "", "not a cell"); err == nil {
		t.Error("expected error for invalid reference")
	}
}

func TestWorkbookAddSheet(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, testConfig(), sheet.NewMemory("Template"), weekAPI())

	info, err := svc.Workbook.AddSheet(ctx, "", timeutil.WindowFlags{From: "2024-01-03"})
	if err != nil {
		t.Fatalf("AddSheet() error = %v", err)
	}
	if info != (SheetInfo{Index: 1, Name: "Week 1", Previous: "Template"}) {
		t.Errorf("AddSheet() = %+v", info)
	}

	window, err := svc.Workbook.Window(ctx, "Week 1")
	if err != nil {
		t.Fatal(err)
	}
	if window.Start != "2024-01-03T00:00:00Z" || window.End != "2024-01-07T23:59:59Z" {
		t.Errorf("Window() = %+v", window)
	}

	if _, err := svc.Workbook.AddSheet(ctx, "", timeutil.WindowFlags{}); err == nil {
		t.Error("expected error without name or window")
	}
	if _, err := svc.Workbook.AddSheet(ctx, "Week 1", timeutil.WindowFlags{}); !errors.Is(err, sheet.ErrSheetExists) {
		t.Errorf("duplicate AddSheet() error = %v", err)
	}
}

func TestWorkbookLocalOnly(t *testing.T) {
	svc := newTestServices(t, testConfig(), sheet.NewMemory("Week 1"), weekAPI())

	if _, err := svc.Workbook.Backups(); !errors.Is(err, ErrNotLocal) {
		t.Errorf("Backups() error = %v", err)
	}
	if err := svc.Workbook.Restore(1); !errors.Is(err, ErrNotLocal) {
		t.Errorf("Restore() error = %v", err)
	}
	if _, err := svc.Workbook.Validate(); !errors.Is(err, ErrNotLocal) {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestWorkbookRestore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workbook.json")
	wb, err := storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := wb.AddSheet(ctx, "Week 1"); err != nil {
		t.Fatal(err)
	}
	if err := wb.Backup(ctx); err != nil {
		t.Fatal(err)
	}
	if err := wb.AddSheet(ctx, "Week 2"); err != nil {
		t.Fatal(err)
	}

	svc, err := NewServicesWith(testConfig(), "", wb, path, weekAPI(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Workbook.Restore(1); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	infos, err := svc.Workbook.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].Name != "Week 1" {
		t.Errorf("after restore List() = %+v", infos)
	}

	health, err := svc.Workbook.Validate()
	if err != nil {
		t.Fatal(err)
	}
	if !health.Valid || health.Sheets != 1 {
		t.Errorf("Validate() = %+v", health)
	}
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	wb := sheet.NewMemory("Week 1")
	seedWeek(t, wb, "Week 1", "2024-01-01", "2024-01-07")
	api := weekAPI()
	api.raw = []byte(`[{"id":"e1"}]`)
	svc := newTestServices(t, testConfig(), wb, api)

	projects, err := svc.Catalog.Projects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 2 || projects[0].Name != "Admin" {
		t.Errorf("Projects() = %+v", projects)
	}

	raw, err := svc.Catalog.Entries(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `[{"id":"e1"}]` || api.start != "2024-01-01T00:00:00Z" {
		t.Errorf("Entries() = %s for %s", raw, api.start)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	cfg := config.DefaultConfig().Layout
	cfg.TotalsRange = "nope"
	if _, err := ParseLayout(cfg); err == nil || !strings.Contains(err.Error(), "layout.totals_range") {
		t.Errorf("ParseLayout() error = %v", err)
	}
}

// pausingWorkbook blocks the n-th Clear call until the matching release
// channel is closed. The first call signals cleared after clearing.
type pausingWorkbook struct {
	*sheet.Memory

	mu      sync.Mutex
	calls   int
	cleared chan struct{}
	release []chan struct{}
}

func (p *pausingWorkbook) Clear(ctx context.Context, name string, r sheet.Range) error {
	p.mu.Lock()
	n := p.calls
	p.calls++
	p.mu.Unlock()

	if err := p.Memory.Clear(ctx, name, r); err != nil {
		return err
	}
	if n == 0 {
		close(p.cleared)
	}
	if n < len(p.release) {
		<-p.release[n]
	}
	return nil
}

// quietAPI serves fixed data without recording the window
type quietAPI struct{ *fakeAPI }

func (q quietAPI) TimeEntries(ctx context.Context, start, end string) ([]entry.TimeEntry, error) {
	return q.entries, nil
}

func TestPull_OverlappingPullsKeepProofs(t *testing.T) {
	ctx := context.Background()
	mem := sheet.NewMemory("Template", "Week 1")
	seedWeek(t, mem, "Week 1", "2024-01-01", "2024-01-07")
	if err := mem.Write(ctx, "Week 1", sheet.MustParseRange("A12:F12"),
		sheet.Grid{{"1-1-2024", "9:5", "1:5:9", "R2D2", "Standup", "proof-link"}}); err != nil {
		t.Fatal(err)
	}

	wb := &pausingWorkbook{
		Memory:  mem,
		cleared: make(chan struct{}),
		release: []chan struct{}{make(chan struct{}), make(chan struct{})},
	}
	svc := newTestServices(t, testConfig(), wb, quietAPI{weekAPI()})

	pull := func(done chan<- error) {
		_, err := svc.Timesheet.Pull(ctx, "Week 1", PullOptions{})
		done <- err
	}

	first := make(chan error, 1)
	go pull(first)
	<-wb.cleared

	second := make(chan error, 1)
	go pull(second)
	// give the second pull time to reach the entry range
	time.Sleep(50 * time.Millisecond)

	close(wb.release[0])
	if err := <-first; err != nil {
		t.Fatalf("first Pull() error = %v", err)
	}
	close(wb.release[1])
	if err := <-second; err != nil {
		t.Fatalf("second Pull() error = %v", err)
	}

	got, _ := sheet.ReadCell(ctx, mem, "Week 1", sheet.MustParseRange("F12"))
	if got != "proof-link" {
		t.Errorf("proof after overlapping pulls = %q, want proof-link", got)
	}
}
