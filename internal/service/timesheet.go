package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xolan/clocksheet/internal/config"
	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/timesheet"
)

// TimesheetService refreshes sheets from Clockify
type TimesheetService struct {
	workbook *WorkbookService
	api      API
	cfg      config.Config
	logger   *slog.Logger
}

// Pull replaces the entry range of a sheet (the last sheet when name is
// empty) with the entries of its window. Proof annotations of rows whose
// date and start time reappear are kept.
func (s *TimesheetService) Pull(ctx context.Context, name string, opts PullOptions) (PullResult, error) {
	wb := s.workbook.wb
	layout := s.workbook.layout

	resolved, err := s.workbook.Resolve(ctx, name)
	if err != nil {
		return PullResult{}, err
	}
	result := PullResult{Sheet: resolved}

	window, err := s.workbook.Window(ctx, resolved)
	if err != nil {
		return PullResult{}, err
	}
	if opts.Start != "" {
		window.Start = opts.Start
	}
	if opts.End != "" {
		window.End = opts.End
	}
	result.Window = window

	var (
		entries  []entry.TimeEntry
		projects []entry.Project
		tags     []entry.Tag
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.api.TimeEntries(gctx, window.Start, window.End)
		if err != nil {
			return fmt.Errorf("failed to fetch time entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		projects, err = s.api.Projects(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tags, err = s.api.Tags(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch tags: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return PullResult{}, err
	}
	result.Fetched = len(entries)
	s.logger.Debug("fetched from clockify", "entries", len(entries), "projects", len(projects), "tags", len(tags))

	// Proofs collected below must not be read while another pull has the
	// range cleared.
	s.workbook.mu.Lock()
	defer s.workbook.mu.Unlock()

	old, err := wb.Read(ctx, resolved, layout.Entries)
	if err != nil {
		return PullResult{}, fmt.Errorf("failed to read entry range: %w", err)
	}
	notes := timesheet.CollectAnnotations(old, timesheet.ColDate, timesheet.ColStart, timesheet.ColProof)

	if err := s.workbook.backup(ctx); err != nil {
		return PullResult{}, err
	}
	if err := wb.Clear(ctx, resolved, layout.Entries); err != nil {
		return PullResult{}, fmt.Errorf("failed to clear entry range: %w", err)
	}

	lookup := timesheet.NewLookup(projects, tags)
	rows, running := timesheet.BuildRows(entries, lookup, s.workbook.loc)
	result.Running = running

	if len(rows) > layout.Entries.Rows() {
		result.Dropped = len(rows) - layout.Entries.Rows()
		s.logger.Warn("entry range too small, rows dropped", "sheet", resolved, "dropped", result.Dropped)
		rows = rows[:layout.Entries.Rows()]
	}

	if len(rows) > 0 {
		matched, err := s.writeRows(ctx, resolved, rows, notes)
		if err != nil {
			return PullResult{}, err
		}
		result.ProofsKept = matched
	}
	result.Written = len(rows)

	if opts.Totals || s.cfg.Layout.ComputeTotals {
		if err := s.writeTotals(ctx, resolved, entries, lookup, &result); err != nil {
			return PullResult{}, err
		}
	}

	s.logger.Info("sheet pulled", "sheet", resolved, "written", result.Written,
		"running", result.Running, "proofs_kept", result.ProofsKept)
	return result, nil
}

// writeRows writes rows, reads them back as displayed and writes the proof
// column keyed on the displayed date and start time.
func (s *TimesheetService) writeRows(ctx context.Context, name string, rows sheet.Grid, notes map[string]string) (int, error) {
	wb := s.workbook.wb
	out := s.workbook.layout.Entries.Resize(len(rows), s.workbook.layout.Entries.Cols())

	if err := wb.Write(ctx, name, out, rows); err != nil {
		return 0, fmt.Errorf("failed to write entries: %w", err)
	}

	shown, err := wb.Read(ctx, name, out)
	if err != nil {
		return 0, fmt.Errorf("failed to read back entries: %w", err)
	}
	matched := timesheet.ApplyAnnotations(shown, notes, timesheet.ColDate, timesheet.ColStart, timesheet.ColProof)

	if timesheet.ColProof >= out.Cols() {
		return matched, nil
	}
	proofs := make(sheet.Grid, len(shown))
	for i, row := range shown {
		proofs[i] = []string{row[timesheet.ColProof]}
	}
	proofRange := out.Offset(0, timesheet.ColProof).Resize(len(proofs), 1)
	if err := wb.Write(ctx, name, proofRange, proofs); err != nil {
		return 0, fmt.Errorf("failed to write proofs: %w", err)
	}
	return matched, nil
}

// writeTotals rewrites the totals range: one row per category with the
// week total and the cumulative total including the previous sheet.
func (s *TimesheetService) writeTotals(ctx context.Context, name string, entries []entry.TimeEntry, lookup timesheet.Lookup, result *PullResult) error {
	wb := s.workbook.wb
	totalsRange := s.workbook.layout.Totals

	previous, err := s.workbook.Previous(ctx, name)
	if err != nil {
		return err
	}
	var prevTotals map[string]time.Duration
	if previous != sheet.NoPreviousSheet {
		g, err := wb.Read(ctx, previous, totalsRange)
		if err != nil {
			return fmt.Errorf("failed to read totals of %s: %w", previous, err)
		}
		prevTotals = timesheet.ParseTotals(g)
	}

	totals := timesheet.ComputeTotals(entries, lookup, prevTotals)
	grid := timesheet.TotalsGrid(totals)
	if len(grid) > totalsRange.Rows() {
		keep := totalsRange.Rows()
		result.TotalsDropped = len(grid) - keep
		for _, t := range totals[keep:] {
			result.DroppedCategories = append(result.DroppedCategories, t.Category)
		}
		s.logger.Warn("totals range too small, categories dropped",
			"sheet", name,
			"dropped", result.TotalsDropped,
			"categories", result.DroppedCategories)
		grid = grid[:keep]
		totals = totals[:keep]
	}

	if err := wb.Clear(ctx, name, totalsRange); err != nil {
		return fmt.Errorf("failed to clear totals range: %w", err)
	}
	if len(grid) > 0 {
		if err := wb.Write(ctx, name, totalsRange, grid); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
	}
	result.Totals = totalLines(totals)
	return nil
}
