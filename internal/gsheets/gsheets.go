// Package gsheets implements sheet.Workbook on top of a Google Sheets
// spreadsheet through the Sheets v4 API.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/xolan/clocksheet/internal/sheet"
)

const (
	valueRender = "FORMATTED_VALUE"
	valueInput  = "USER_ENTERED"
)

// Workbook is a spreadsheet accessed through the Sheets API
type Workbook struct {
	id     string
	svc    *sheets.Service
	logger *slog.Logger
}

// New connects to the spreadsheet with the given id. With a credentials
// file the service account or OAuth client in it is used; otherwise the
// application default credentials apply. Extra client options are passed
// through (tests use them to point at a fake endpoint).
func New(ctx context.Context, spreadsheetID, credentialsFile string, logger *slog.Logger, opts ...option.ClientOption) (*Workbook, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if credentialsFile != "" {
		opts = append([]option.ClientOption{option.WithCredentialsFile(credentialsFile)}, opts...)
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Workbook{id: spreadsheetID, svc: svc, logger: logger}, nil
}

// Sheets implements sheet.Workbook
func (w *Workbook) Sheets(ctx context.Context) ([]string, error) {
	ss, err := w.svc.Spreadsheets.Get(w.id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, w.wrap("list sheets", "", err)
	}

	names := make([]string, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			names = append(names, s.Properties.Title)
		}
	}
	return names, nil
}

// Read implements sheet.Workbook. Values are read as displayed.
func (w *Workbook) Read(ctx context.Context, name string, r sheet.Range) (sheet.Grid, error) {
	a1 := r.InSheet(name).String()
	w.logger.Debug("sheets read", "range", a1)

	vr, err := w.svc.Spreadsheets.Values.Get(w.id, a1).ValueRenderOption(valueRender).Context(ctx).Do()
	if err != nil {
		return nil, w.wrap("read", name, err)
	}

	g := make(sheet.Grid, len(vr.Values))
	for i, row := range vr.Values {
		g[i] = make([]string, len(row))
		for j, v := range row {
			g[i][j] = fmt.Sprint(v)
		}
	}
	return g.Fit(r.Rows(), r.Cols()), nil
}

// Write implements sheet.Workbook. Values are entered as if typed by a user,
// so dates and numbers are recognized by the spreadsheet.
func (w *Workbook) Write(ctx context.Context, name string, r sheet.Range, g sheet.Grid) error {
	if len(g) == 0 {
		return nil
	}

	rows := len(g)
	if rows > r.Rows() {
		rows = r.Rows()
	}
	values := make([][]interface{}, rows)
	width := 0
	for i := 0; i < rows; i++ {
		n := len(g[i])
		if n > r.Cols() {
			n = r.Cols()
		}
		if n > width {
			width = n
		}
		values[i] = make([]interface{}, n)
		for j := 0; j < n; j++ {
			values[i][j] = g[i][j]
		}
	}
	if width == 0 {
		return nil
	}

	target := r.Resize(rows, width).InSheet(name).String()
	w.logger.Debug("sheets write", "range", target, "rows", rows)

	_, err := w.svc.Spreadsheets.Values.Update(w.id, target, &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInput).Context(ctx).Do()
	if err != nil {
		return w.wrap("write", name, err)
	}
	return nil
}

// Clear implements sheet.Workbook
func (w *Workbook) Clear(ctx context.Context, name string, r sheet.Range) error {
	a1 := r.InSheet(name).String()
	w.logger.Debug("sheets clear", "range", a1)

	if _, err := w.svc.Spreadsheets.Values.Clear(w.id, a1, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return w.wrap("clear", name, err)
	}
	return nil
}

// AddSheet implements sheet.Workbook
func (w *Workbook) AddSheet(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: name}},
		}},
	}
	if _, err := w.svc.Spreadsheets.BatchUpdate(w.id, req).Context(ctx).Do(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "already exists") {
			return fmt.Errorf("%w: %s", sheet.ErrSheetExists, name)
		}
		return w.wrap("add sheet", name, err)
	}
	return nil
}

// wrap maps "Unable to parse range" responses to sheet.ErrUnknownSheet
func (w *Workbook) wrap(op, name string, err error) error {
	var apiErr *googleapi.Error
	if name != "" && errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest &&
		strings.Contains(apiErr.Message, "Unable to parse range") {
		return fmt.Errorf("%w: %s", sheet.ErrUnknownSheet, name)
	}
	if name == "" {
		return fmt.Errorf("sheets %s failed: %w", op, err)
	}
	return fmt.Errorf("sheets %s on %q failed: %w", op, name, err)
}
