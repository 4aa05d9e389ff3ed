package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/storage"
	"github.com/xolan/clocksheet/internal/timeutil"
)

// ErrNotLocal is returned by file operations on a remote workbook
var ErrNotLocal = errors.New("operation requires the local workbook backend")

// WorkbookService provides sheet-level operations
type WorkbookService struct {
	// mu serializes read-modify-write sequences on the entry range
	mu sync.Mutex

	wb        sheet.Workbook
	localPath string
	layout    Layout
	loc       *time.Location
	logger    *slog.Logger
}

// Layout returns the parsed sheet layout
func (s *WorkbookService) Layout() Layout {
	return s.layout
}

// Location returns the timezone used for dates
func (s *WorkbookService) Location() *time.Location {
	return s.loc
}

// LocalPath returns the workbook file of the local backend, or ""
func (s *WorkbookService) LocalPath() string {
	return s.localPath
}

// List returns every sheet with its index and previous sheet name
func (s *WorkbookService) List(ctx context.Context) ([]SheetInfo, error) {
	names, err := s.wb.Sheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	infos := make([]SheetInfo, len(names))
	for i, n := range names {
		infos[i] = SheetInfo{Index: i, Name: n, Previous: sheet.PreviousName(names, n)}
	}
	return infos, nil
}

// Resolve returns name, or the last sheet when name is empty
func (s *WorkbookService) Resolve(ctx context.Context, name string) (string, error) {
	return sheet.Resolve(ctx, s.wb, name)
}

// Previous returns the name of the sheet left of name (the last sheet when
// name is empty). The first sheet yields sheet.NoPreviousSheet.
func (s *WorkbookService) Previous(ctx context.Context, name string) (string, error) {
	resolved, err := s.Resolve(ctx, name)
	if err != nil {
		return "", err
	}
	names, err := s.wb.Sheets(ctx)
	if err != nil {
		return "", err
	}
	return sheet.PreviousName(names, resolved), nil
}

// Cell returns the display value of ref on the given sheet
func (s *WorkbookService) Cell(ctx context.Context, name, ref string) (string, error) {
	resolved, r, err := s.cellTarget(ctx, name, ref)
	if err != nil {
		return "", err
	}
	return sheet.ReadCell(ctx, s.wb, resolved, r)
}

// SetCell writes value into ref on the given sheet
func (s *WorkbookService) SetCell(ctx context.Context, name, ref, value string) error {
	resolved, r, err := s.cellTarget(ctx, name, ref)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := sheet.WriteCell(ctx, s.wb, resolved, r, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", ref, err)
	}
	s.logger.Debug("cell written", "sheet", resolved, "cell", r.A1())
	return nil
}

// cellTarget parses ref; a sheet prefix in ref wins over name
func (s *WorkbookService) cellTarget(ctx context.Context, name, ref string) (string, sheet.Range, error) {
	r, err := sheet.ParseRange(ref)
	if err != nil {
		return "", sheet.Range{}, err
	}
	if r.Sheet != "" {
		name = r.Sheet
	}
	resolved, err := s.Resolve(ctx, name)
	if err != nil {
		return "", sheet.Range{}, err
	}
	return resolved, r, nil
}

// AddSheet appends a sheet. When flags select a window, the start and end
// cells are seeded with its dates; an empty name is then derived from the
// window's week.
func (s *WorkbookService) AddSheet(ctx context.Context, name string, flags timeutil.WindowFlags) (SheetInfo, error) {
	var start, end time.Time
	if flags.IsSet() {
		var err error
		start, end, err = flags.Resolve(s.loc)
		if err != nil {
			return SheetInfo{}, err
		}
	}

	if name == "" {
		if start.IsZero() {
			return SheetInfo{}, errors.New("sheet name is required without --this-week, --last-week or --from")
		}
		name = timeutil.WeekName(start)
	}

	if err := s.wb.AddSheet(ctx, name); err != nil {
		return SheetInfo{}, fmt.Errorf("failed to add sheet: %w", err)
	}

	if !start.IsZero() {
		if err := sheet.WriteCell(ctx, s.wb, name, s.layout.Start, start.Format("2006-01-02")); err != nil {
			return SheetInfo{}, fmt.Errorf("failed to seed start date: %w", err)
		}
		if err := sheet.WriteCell(ctx, s.wb, name, s.layout.End, end.Format("2006-01-02")); err != nil {
			return SheetInfo{}, fmt.Errorf("failed to seed end date: %w", err)
		}
	}

	names, err := s.wb.Sheets(ctx)
	if err != nil {
		return SheetInfo{}, err
	}
	s.logger.Info("sheet added", "sheet", name)
	return SheetInfo{Index: sheet.IndexOf(names, name), Name: name, Previous: sheet.PreviousName(names, name)}, nil
}

// Window reads the start and end cells of a sheet and converts them into
// Clockify query bounds
func (s *WorkbookService) Window(ctx context.Context, name string) (Window, error) {
	startText, err := sheet.ReadCell(ctx, s.wb, name, s.layout.Start)
	if err != nil {
		return Window{}, fmt.Errorf("failed to read start cell: %w", err)
	}
	endText, err := sheet.ReadCell(ctx, s.wb, name, s.layout.End)
	if err != nil {
		return Window{}, fmt.Errorf("failed to read end cell: %w", err)
	}
	return Window{
		Start: timeutil.APIBound(startText, s.loc, false),
		End:   timeutil.APIBound(endText, s.loc, true),
	}, nil
}

// Backups lists the backups of the local workbook file
func (s *WorkbookService) Backups() ([]storage.BackupInfo, error) {
	if s.localPath == "" {
		return nil, ErrNotLocal
	}
	return storage.ListBackups(s.localPath)
}

// Restore replaces the local workbook file with backup n and reloads it
func (s *WorkbookService) Restore(n int) error {
	if s.localPath == "" {
		return ErrNotLocal
	}
	if err := storage.RestoreBackup(s.localPath, n); err != nil {
		return err
	}

	wb, err := storage.Open(s.localPath)
	if err != nil {
		return fmt.Errorf("restored workbook cannot be opened: %w", err)
	}
	s.wb = wb
	s.logger.Info("workbook restored", "backup", n, "path", s.localPath)
	return nil
}

// Validate reports the health of the local workbook file
func (s *WorkbookService) Validate() (storage.Health, error) {
	if s.localPath == "" {
		return storage.Health{}, ErrNotLocal
	}
	return storage.ValidateWorkbook(s.localPath)
}

// backup snapshots the workbook when the backend supports it
func (s *WorkbookService) backup(ctx context.Context) error {
	b, ok := s.wb.(Backupper)
	if !ok {
		return nil
	}
	if err := b.Backup(ctx); err != nil {
		return fmt.Errorf("failed to back up workbook: %w", err)
	}
	return nil
}
