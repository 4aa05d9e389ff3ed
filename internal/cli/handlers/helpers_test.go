package handlers

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/clocksheet/internal/cli"
	"github.com/xolan/clocksheet/internal/config"
	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/tui"
)

type fakeAPI struct {
	err        error
	start, end string
}

func (f *fakeAPI) TimeEntries(ctx context.Context, start, end string) ([]entry.TimeEntry, error) {
	f.start, f.end = start, end
	if f.err != nil {
		return nil, f.err
	}
	s := time.Date(2024, time.January, 2, 14, 30, 0, 0, time.UTC)
	e := s.Add(90 * time.Minute)
	return []entry.TimeEntry{{
		Description:  "Review",
		ProjectID:    "p1",
		TagIDs:       []string{"t1"},
		TimeInterval: entry.Interval{Start: s, End: &e, Duration: "PT1H30M"},
	}}, nil
}

func (f *fakeAPI) TimeEntriesRaw(ctx context.Context, start, end string) ([]byte, error) {
	f.start, f.end = start, end
	if f.err != nil {
		return nil, f.err
	}
	return []byte(`[{"id":"e1"}]`), nil
}

func (f *fakeAPI) Projects(ctx context.Context) ([]entry.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []entry.Project{{ID: "p1", Name: "Clocksheet"}}, nil
}

func (f *fakeAPI) Tags(ctx context.Context) ([]entry.Tag, error) {
	return []entry.Tag{{ID: "t1", Name: "R2D2"}}, nil
}

type testEnv struct {
	deps     *cli.Deps
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode *int
	wb       sheet.Workbook
	api      *fakeAPI
	viewed   *tui.Options
}

// setupTestDeps builds deps around an in-memory workbook with a template
// sheet and one week
func setupTestDeps(t *testing.T) *testEnv {
	t.Helper()
	wb := sheet.NewMemory("Template", "Week 1")
	ctx := context.Background()
	if err := sheet.WriteCell(ctx, wb, "Week 1", sheet.MustParseRange("C2"), "2024-01-01"); err != nil {
		t.Fatal(err)
	}
	if err := sheet.WriteCell(ctx, wb, "Week 1", sheet.MustParseRange("C3"), "2024-01-07"); err != nil {
		t.Fatal(err)
	}
	return setupTestDepsWith(t, wb, "")
}

func setupTestDepsWith(t *testing.T, wb sheet.Workbook, localPath string) *testEnv {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	api := &fakeAPI{}

	services, err := service.NewServicesWith(cfg, filepath.Join(t.TempDir(), "config.toml"), wb, localPath, api, nil)
	if err != nil {
		t.Fatal(err)
	}

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		wb:     wb,
		api:    api,
	}
	exitCode := 0
	env.exitCode = &exitCode
	env.deps = &cli.Deps{
		Stdout:     env.stdout,
		Stderr:     env.stderr,
		Stdin:      strings.NewReader(""),
		Exit:       func(code int) { exitCode = code },
		Services:   services,
		Config:     cfg,
		IsTerminal: func() bool { return false },
		View: func(ctx context.Context, src tui.Source, opts tui.Options) error {
			env.viewed = &opts
			return nil
		},
	}
	return env
}

func (e *testEnv) expectSuccess(t *testing.T) {
	t.Helper()
	if *e.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d; stderr: %s", *e.exitCode, e.stderr.String())
	}
}

func (e *testEnv) expectFailure(t *testing.T, wants ...string) {
	t.Helper()
	if *e.exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", *e.exitCode)
	}
	if !strings.Contains(e.stderr.String(), "Error:") {
		t.Errorf("expected 'Error:' in stderr, got %q", e.stderr.String())
	}
	for _, w := range wants {
		if !strings.Contains(e.stderr.String(), w) {
			t.Errorf("expected %q in stderr, got %q", w, e.stderr.String())
		}
	}
}
