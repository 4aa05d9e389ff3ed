package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xolan/clocksheet/internal/sheet"
)

var logLevels = []interface{}{"debug", "info", "warn", "error"}

// Normalize lowercases enumerations and fills empty values with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}

	c.Workbook.Backend = strings.ToLower(strings.TrimSpace(c.Workbook.Backend))
	if c.Workbook.Backend == "" {
		c.Workbook.Backend = BackendLocal
	}

	if c.Clockify.BaseURL == "" {
		c.Clockify.BaseURL = def.Clockify.BaseURL
	}
	c.Clockify.BaseURL = strings.TrimRight(c.Clockify.BaseURL, "/")

	if len(c.Report.EntryHeaders) == 0 {
		c.Report.EntryHeaders = def.Report.EntryHeaders
	}
	if len(c.Report.TotalsHeaders) == 0 {
		c.Report.TotalsHeaders = def.Report.TotalsHeaders
	}
}

// Validate checks the configuration. Credentials are not required here;
// commands that call the API report missing credentials themselves.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(logLevels...)),
		validation.Field(&c.Timezone, validation.By(validTimezone)),
		validation.Field(&c.Clockify),
		validation.Field(&c.Workbook),
		validation.Field(&c.Layout),
	)
}

// Validate implements validation.Validatable
func (c ClockifyConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.TimeoutSeconds, validation.Min(0), validation.Max(600)),
		validation.Field(&c.PageSize, validation.Min(1), validation.Max(5000)),
		validation.Field(&c.MaxPages, validation.Min(1)),
	)
}

// Validate implements validation.Validatable
func (c WorkbookConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Backend, validation.Required, validation.In(BackendLocal, BackendGoogle)),
		validation.Field(&c.SpreadsheetID, validation.When(c.Backend == BackendGoogle, validation.Required)),
	)
}

// Validate implements validation.Validatable
func (c LayoutConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.EntryRange, validation.Required, validation.By(validRange)),
		validation.Field(&c.TotalsRange, validation.Required, validation.By(validRange)),
		validation.Field(&c.StartCell, validation.Required, validation.By(validRange)),
		validation.Field(&c.EndCell, validation.Required, validation.By(validRange)),
		validation.Field(&c.DescriptionCell, validation.Required, validation.By(validRange)),
	)
}

func validRange(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := sheet.ParseRange(s); err != nil {
		return errors.New("must be an A1 range such as A12:G200")
	}
	return nil
}

func validTimezone(value interface{}) error {
	s, _ := value.(string)
	if s == "" || s == "Local" {
		return nil
	}
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown timezone %q", s)
	}
	return nil
}
