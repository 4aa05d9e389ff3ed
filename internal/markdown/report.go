package markdown

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// ReportSeparator joins the reports of several sheets
const ReportSeparator = "<br>"

//go:embed report.tmpl
var defaultTemplate string

// Report holds the pieces of one weekly report
type Report struct {
	Week        string
	Description string
	TotalsTable string
	EntryTable  string
}

// Renderer turns Reports into markdown using a text/template
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a Renderer using the built-in weekly template
func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("report").Parse(defaultTemplate))}
}

// NewRendererFromFile returns a Renderer using the template stored at path.
// An empty path selects the built-in template.
func NewRendererFromFile(path string) (*Renderer, error) {
	if path == "" {
		return NewRenderer(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report template: %w", err)
	}

	tmpl, err := template.New("report").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template %s: %w", path, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template for a single report
func (r *Renderer) Render(rep Report) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, rep); err != nil {
		return "", fmt.Errorf("failed to render report for %s: %w", rep.Week, err)
	}
	return b.String(), nil
}

// Join concatenates rendered reports, each followed by ReportSeparator
func Join(reports []string) string {
	var b strings.Builder
	for _, r := range reports {
		b.WriteString(r)
		b.WriteString(ReportSeparator)
	}
	return b.String()
}
