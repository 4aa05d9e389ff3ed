// Package storage keeps a workbook in a local JSON file. Every mutation is
// written back atomically; destructive operations can be preceded by a
// rotating backup.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/xolan/clocksheet/internal/osutil"
	"github.com/xolan/clocksheet/internal/sheet"
)

const (
	// WorkbookFile is the default workbook file name inside the app dir
	WorkbookFile = "workbook.json"
	// FormatVersion is written into every workbook file
	FormatVersion = 1
)

// document is the on-disk layout of a workbook file
type document struct {
	Version int          `json:"version"`
	Sheets  []sheet.Page `json:"sheets"`
}

// GetWorkbookPath returns the default workbook file location,
// creating the app directory when needed.
func GetWorkbookPath() (string, error) {
	return osutil.AppFile(WorkbookFile)
}

// FileWorkbook is a sheet.Workbook persisted to a JSON file
type FileWorkbook struct {
	mu   sync.Mutex
	path string
	mem  *sheet.Memory
}

// Open loads the workbook stored at path. A missing file yields an empty
// workbook that is created on the first write.
func Open(path string) (*FileWorkbook, error) {
	pages, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &FileWorkbook{path: path, mem: sheet.NewMemoryFromPages(pages)}, nil
}

// Load reads the pages stored at path. A missing file yields no pages.
func Load(path string) ([]sheet.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read workbook %s: %w", path, err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook %s: %w", path, err)
	}
	return doc.Sheets, nil
}

// Save writes pages to path atomically
func Save(path string, pages []sheet.Page) error {
	if pages == nil {
		pages = []sheet.Page{}
	}
	data, err := sonic.ConfigDefault.MarshalIndent(document{Version: FormatVersion, Sheets: pages}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode workbook: %w", err)
	}
	return writeFileAtomic(path, append(data, '\n'))
}

func decode(data []byte) (document, error) {
	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return document{}, err
	}
	if doc.Version > FormatVersion {
		return document{}, fmt.Errorf("unsupported workbook version %d", doc.Version)
	}
	return doc, nil
}

// Path returns the file backing the workbook
func (w *FileWorkbook) Path() string {
	return w.path
}

// Backup copies the current file to the rotating backup set
func (w *FileWorkbook) Backup(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return CreateBackup(w.path)
}

// Sheets implements sheet.Workbook
func (w *FileWorkbook) Sheets(ctx context.Context) ([]string, error) {
	return w.mem.Sheets(ctx)
}

// Read implements sheet.Workbook
func (w *FileWorkbook) Read(ctx context.Context, name string, r sheet.Range) (sheet.Grid, error) {
	return w.mem.Read(ctx, name, r)
}

// Write implements sheet.Workbook
func (w *FileWorkbook) Write(ctx context.Context, name string, r sheet.Range, g sheet.Grid) error {
	return w.mutate(func() error { return w.mem.Write(ctx, name, r, g) })
}

// Clear implements sheet.Workbook
func (w *FileWorkbook) Clear(ctx context.Context, name string, r sheet.Range) error {
	return w.mutate(func() error { return w.mem.Clear(ctx, name, r) })
}

// AddSheet implements sheet.Workbook
func (w *FileWorkbook) AddSheet(ctx context.Context, name string) error {
	return w.mutate(func() error { return w.mem.AddSheet(ctx, name) })
}

func (w *FileWorkbook) mutate(fn func() error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := fn(); err != nil {
		return err
	}
	if err := Save(w.path, w.mem.Pages()); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
