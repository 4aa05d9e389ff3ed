package service

import (
	"context"
	"fmt"

	"github.com/xolan/clocksheet/internal/config"
	"github.com/xolan/clocksheet/internal/markdown"
	"github.com/xolan/clocksheet/internal/sheet"
)

// ReportService renders weekly sheets as markdown
type ReportService struct {
	workbook *WorkbookService
	cfg      config.ReportConfig
}

// Render returns the markdown report of a sheet (the last sheet when name
// is empty)
func (s *ReportService) Render(ctx context.Context, name string) (string, error) {
	renderer, err := markdown.NewRendererFromFile(s.cfg.TemplateFile)
	if err != nil {
		return "", err
	}
	resolved, err := s.workbook.Resolve(ctx, name)
	if err != nil {
		return "", err
	}
	return s.render(ctx, renderer, resolved)
}

// RenderAll renders every sheet from the last one down to the second and
// joins the reports. The first sheet holds no week of its own.
func (s *ReportService) RenderAll(ctx context.Context) (string, error) {
	renderer, err := markdown.NewRendererFromFile(s.cfg.TemplateFile)
	if err != nil {
		return "", err
	}
	names, err := s.workbook.wb.Sheets(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list sheets: %w", err)
	}

	var reports []string
	for i := len(names) - 1; i >= 1; i-- {
		out, err := s.render(ctx, renderer, names[i])
		if err != nil {
			return "", err
		}
		reports = append(reports, out)
	}
	return markdown.Join(reports), nil
}

// Report assembles the pieces of a sheet's report without rendering them
func (s *ReportService) Report(ctx context.Context, name string) (markdown.Report, error) {
	wb := s.workbook.wb
	layout := s.workbook.layout

	entries, err := wb.Read(ctx, name, layout.Entries)
	if err != nil {
		return markdown.Report{}, fmt.Errorf("failed to read entries of %s: %w", name, err)
	}
	totals, err := wb.Read(ctx, name, layout.Totals)
	if err != nil {
		return markdown.Report{}, fmt.Errorf("failed to read totals of %s: %w", name, err)
	}
	description, err := sheet.ReadCell(ctx, wb, name, layout.Description)
	if err != nil {
		return markdown.Report{}, fmt.Errorf("failed to read description of %s: %w", name, err)
	}

	entryTable := markdown.FormatTable(s.cfg.EntryHeaders, s.cfg.SkipHeader, entries)
	entryTable = markdown.ApplySubstitutions(entryTable, s.cfg.Substitutions)

	return markdown.Report{
		Week:        name,
		Description: description,
		TotalsTable: markdown.FormatTable(s.cfg.TotalsHeaders, s.cfg.SkipHeader, totals),
		EntryTable:  entryTable,
	}, nil
}

func (s *ReportService) render(ctx context.Context, renderer *markdown.Renderer, name string) (string, error) {
	rep, err := s.Report(ctx, name)
	if err != nil {
		return "", err
	}
	return renderer.Render(rep)
}
