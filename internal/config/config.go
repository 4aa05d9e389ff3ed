// Package config loads clocksheet's configuration: Clockify credentials,
// workbook backend and the cell layout of a weekly sheet.
package config

import (
	"time"

	"github.com/xolan/clocksheet/internal/markdown"
	"github.com/xolan/clocksheet/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"

	// BackendLocal stores the workbook in a JSON file
	BackendLocal = "local"
	// BackendGoogle uses a Google Sheets spreadsheet
	BackendGoogle = "google"
)

// Config is the complete application configuration
type Config struct {
	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// Timezone renders entry dates and times (IANA name or "Local")
	Timezone string         `toml:"timezone" yaml:"timezone"`
	Clockify ClockifyConfig `toml:"clockify" yaml:"clockify"`
	Workbook WorkbookConfig `toml:"workbook" yaml:"workbook"`
	Layout   LayoutConfig   `toml:"layout" yaml:"layout"`
	Report   ReportConfig   `toml:"report" yaml:"report"`
	TUI      TUIConfig      `toml:"tui" yaml:"tui"`
}

// ClockifyConfig holds API access settings
type ClockifyConfig struct {
	BaseURL        string `toml:"base_url" yaml:"base_url"`
	WorkspaceID    string `toml:"workspace_id" yaml:"workspace_id"`
	UserID         string `toml:"user_id" yaml:"user_id"`
	APIKey         string `toml:"api_key" yaml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds" yaml:"timeout_seconds"`
	PageSize       int    `toml:"page_size" yaml:"page_size"`
	MaxPages       int    `toml:"max_pages" yaml:"max_pages"`
}

// Timeout returns the HTTP timeout as a duration
func (c ClockifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WorkbookConfig selects where sheets live
type WorkbookConfig struct {
	Backend         string `toml:"backend" yaml:"backend"`
	Path            string `toml:"path" yaml:"path"`
	SpreadsheetID   string `toml:"spreadsheet_id" yaml:"spreadsheet_id"`
	CredentialsFile string `toml:"credentials_file" yaml:"credentials_file"`
}

// LayoutConfig holds the A1 addresses of a weekly sheet
type LayoutConfig struct {
	EntryRange      string `toml:"entry_range" yaml:"entry_range"`
	TotalsRange     string `toml:"totals_range" yaml:"totals_range"`
	StartCell       string `toml:"start_cell" yaml:"start_cell"`
	EndCell         string `toml:"end_cell" yaml:"end_cell"`
	DescriptionCell string `toml:"description_cell" yaml:"description_cell"`
	ComputeTotals   bool   `toml:"compute_totals" yaml:"compute_totals"`
}

// ReportConfig controls markdown rendering
type ReportConfig struct {
	EntryHeaders  []string                `toml:"entry_headers" yaml:"entry_headers"`
	TotalsHeaders []string                `toml:"totals_headers" yaml:"totals_headers"`
	SkipHeader    string                  `toml:"skip_header" yaml:"skip_header"`
	TemplateFile  string                  `toml:"template_file" yaml:"template_file"`
	Substitutions []markdown.Substitution `toml:"substitutions" yaml:"substitutions"`
}

// TUIConfig holds viewer settings
type TUIConfig struct {
	// Theme is a bubbletint id; empty uses the built-in default
	Theme string `toml:"theme" yaml:"theme"`
}

// DefaultEntryHeaders are the column titles of the entry table
func DefaultEntryHeaders() []string {
	return []string{"Datum", "Starttijd", "Duur", "Categorie", "Omschrijving", "Details + Bewijslast", "_(C)_"}
}

// DefaultTotalsHeaders are the column titles of the totals table
func DefaultTotalsHeaders() []string {
	return []string{"Onderdeel", "Deze week", "Totaal"}
}

// DefaultSubstitutions replace category labels with their badge images
func DefaultSubstitutions() []markdown.Substitution {
	return []markdown.Substitution{
		{Label: "R2D2 Extra", Image: `![E](uploads/3d01f7850afee42575d32bd87f23c75c/image.png "E")`},
		{Label: "R2D2 Research", Image: `![R](uploads/f6816b8ec1d90a06bdf6b81deb104273/image.png "R")`},
		{Label: "R2D2", Image: `![S](uploads/3d01f7850afee42575d32bd87f23c75c/image.png "S")`},
	}
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Timezone: "Local",
		Clockify: ClockifyConfig{
			BaseURL:        "https://api.clockify.me/api/v1",
			TimeoutSeconds: 30,
			PageSize:       200,
			MaxPages:       50,
		},
		Workbook: WorkbookConfig{
			Backend: BackendLocal,
		},
		Layout: LayoutConfig{
			EntryRange:      "A12:G200",
			TotalsRange:     "A6:C9",
			StartCell:       "C2",
			EndCell:         "C3",
			DescriptionCell: "E6",
		},
		Report: ReportConfig{
			EntryHeaders:  DefaultEntryHeaders(),
			TotalsHeaders: DefaultTotalsHeaders(),
			SkipHeader:    "Starttijd",
			Substitutions: DefaultSubstitutions(),
		},
	}
}

// GetConfigPath returns the default config file location,
// creating the app directory when needed.
func GetConfigPath() (string, error) {
	return osutil.AppFile(ConfigFile)
}

// Location resolves Timezone
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
