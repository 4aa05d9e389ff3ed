package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xolan/clocksheet/internal/clockify"
	"github.com/xolan/clocksheet/internal/config"
	"github.com/xolan/clocksheet/internal/gsheets"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Timesheet *TimesheetService
	Report    *ReportService
	Catalog   *CatalogService
	Workbook  *WorkbookService
	Config    *ConfigService
}

// NewServices opens the workbook backend selected by cfg and builds the
// services. configPath is where `config init` writes and may not exist.
func NewServices(ctx context.Context, cfg config.Config, configPath string, logger *slog.Logger) (*Services, error) {
	wb, localPath, err := OpenWorkbook(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewServicesWith(cfg, configPath, wb, localPath, NewAPI(cfg, logger), logger)
}

// NewServicesWith builds the services from explicit collaborators (useful
// for testing). localPath is the workbook file of the local backend and is
// empty for remote workbooks.
func NewServicesWith(cfg config.Config, configPath string, wb sheet.Workbook, localPath string, api API, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	layout, err := ParseLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	workbook := &WorkbookService{wb: wb, localPath: localPath, layout: layout, loc: loc, logger: logger}
	return &Services{
		Timesheet: &TimesheetService{workbook: workbook, api: api, cfg: cfg, logger: logger},
		Report:    &ReportService{workbook: workbook, cfg: cfg.Report},
		Catalog:   &CatalogService{workbook: workbook, api: api},
		Workbook:  workbook,
		Config:    NewConfigService(configPath, cfg),
	}, nil
}

// NewAPI creates a Clockify client from the configuration
func NewAPI(cfg config.Config, logger *slog.Logger) *clockify.Client {
	return clockify.NewClient(clockify.Settings{
		BaseURL:     cfg.Clockify.BaseURL,
		WorkspaceID: cfg.Clockify.WorkspaceID,
		UserID:      cfg.Clockify.UserID,
		APIKey:      cfg.Clockify.APIKey,
		Timeout:     cfg.Clockify.Timeout(),
		PageSize:    cfg.Clockify.PageSize,
		MaxPages:    cfg.Clockify.MaxPages,
	}, clockify.WithLogger(logger))
}

// OpenWorkbook opens the backend selected by cfg. For the local backend it
// also returns the path of the workbook file.
func OpenWorkbook(ctx context.Context, cfg config.Config, logger *slog.Logger) (sheet.Workbook, string, error) {
	switch cfg.Workbook.Backend {
	case config.BackendGoogle:
		wb, err := gsheets.New(ctx, cfg.Workbook.SpreadsheetID, cfg.Workbook.CredentialsFile, logger)
		if err != nil {
			return nil, "", err
		}
		return wb, "", nil

	case config.BackendLocal, "":
		path := cfg.Workbook.Path
		if path == "" {
			var err error
			path, err = storage.GetWorkbookPath()
			if err != nil {
				return nil, "", err
			}
		}
		wb, err := storage.Open(path)
		if err != nil {
			return nil, "", err
		}
		return wb, path, nil

	default:
		return nil, "", fmt.Errorf("unknown workbook backend %q", cfg.Workbook.Backend)
	}
}
