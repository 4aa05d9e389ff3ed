package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/clocksheet/internal/sheet"
)

func tempWorkbookPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), WorkbookFile)
}

func TestOpen_MissingFile(t *testing.T) {
	wb, err := Open(tempWorkbookPath(t))
	if err != nil {
		t.Fatalf("Open returned unexpected error: %v", err)
	}

	names, _ := wb.Sheets(context.Background())
	if len(names) != 0 {
		t.Errorf("expected empty workbook, got %v", names)
	}
}

func TestFileWorkbook_PersistsWrites(t *testing.T) {
	ctx := context.Background()
	path := tempWorkbookPath(t)

	wb, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := wb.AddSheet(ctx, "Week 1"); err != nil {
		t.Fatalf("AddSheet returned unexpected error: %v", err)
	}
	if err := wb.Write(ctx, "Week 1", sheet.MustParseRange("B2:C2"), sheet.Grid{{"a", "b"}}); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	g, err := reopened.Read(ctx, "Week 1", sheet.MustParseRange("A1:C2"))
	if err != nil {
		t.Fatal(err)
	}
	if g[1][1] != "a" || g[1][2] != "b" || g[0][0] != "" {
		t.Errorf("unexpected grid after reopen: %v", g)
	}

	if err := reopened.Clear(ctx, "Week 1", sheet.MustParseRange("B2")); err != nil {
		t.Fatal(err)
	}
	pages, _ := Load(path)
	if len(pages) != 1 || sheet.Grid(pages[0].Cells).Cell(1, 1) != "" || sheet.Grid(pages[0].Cells).Cell(1, 2) != "b" {
		t.Errorf("clear not persisted: %+v", pages)
	}
}

func TestFileWorkbook_FailedMutationNotSaved(t *testing.T) {
	ctx := context.Background()
	path := tempWorkbookPath(t)
	wb, _ := Open(path)

	err := wb.Write(ctx, "missing", sheet.MustParseRange("A1"), sheet.Grid{{"x"}})
	if !errors.Is(err, sheet.ErrUnknownSheet) {
		t.Errorf("expected ErrUnknownSheet, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed write should not create the file")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := tempWorkbookPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil || !strings.Contains(err.Error(), "failed to parse workbook") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_FutureVersion(t *testing.T) {
	path := tempWorkbookPath(t)
	_ = os.WriteFile(path, []byte(`{"version": 99, "sheets": []}`), 0644)

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported workbook version") {
		t.Errorf("expected version error, got %v", err)
	}
}

func TestSave_Atomic(t *testing.T) {
	path := tempWorkbookPath(t)
	if err := Save(path, []sheet.Page{{Name: "S", Cells: [][]string{{"1"}}}}); err != nil {
		t.Fatal(err)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"version"`) || !strings.Contains(string(data), `"S"`) {
		t.Errorf("unexpected file contents: %s", data)
	}
}

func TestSave_NilPages(t *testing.T) {
	path := tempWorkbookPath(t)
	if err := Save(path, nil); err != nil {
		t.Fatal(err)
	}
	pages, err := Load(path)
	if err != nil || len(pages) != 0 {
		t.Errorf("expected empty workbook, got %v, %v", pages, err)
	}
}

func TestFileWorkbook_Path(t *testing.T) {
	path := tempWorkbookPath(t)
	wb, _ := Open(path)
	if wb.Path() != path {
		t.Errorf("Path() = %s", wb.Path())
	}
}
