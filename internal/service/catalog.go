package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xolan/clocksheet/internal/entry"
)

// CatalogService exposes Clockify lookups
type CatalogService struct {
	workbook *WorkbookService
	api      API
}

// Projects returns the workspace projects ordered by name
func (s *CatalogService) Projects(ctx context.Context) ([]entry.Project, error) {
	projects, err := s.api.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})
	return projects, nil
}

// Entries returns the raw Clockify response for the window of a sheet
func (s *CatalogService) Entries(ctx context.Context, name string) ([]byte, error) {
	resolved, err := s.workbook.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	window, err := s.workbook.Window(ctx, resolved)
	if err != nil {
		return nil, err
	}
	raw, err := s.api.TimeEntriesRaw(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}
	return raw, nil
}
