package sheet

import (
	"context"
	"fmt"
	"sync"
)

// Page is one named sheet with its cells stored row-major. Rows and cells are
// sparse at the end: trailing empty rows and cells are trimmed.
type Page struct {
	Name  string     `json:"name"`
	Cells [][]string `json:"cells"`
}

// Memory is an in-memory Workbook. It backs the local workbook file and
// doubles as a fake in tests.
type Memory struct {
	mu    sync.RWMutex
	pages []Page
}

// NewMemory creates a workbook holding the given sheets (all empty)
func NewMemory(names ...string) *Memory {
	m := &Memory{}
	for _, n := range names {
		m.pages = append(m.pages, Page{Name: n})
	}
	return m
}

// NewMemoryFromPages creates a workbook from previously persisted pages
func NewMemoryFromPages(pages []Page) *Memory {
	return &Memory{pages: pages}
}

// Pages returns a deep copy of the workbook contents
func (m *Memory) Pages() []Page {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Page, len(m.pages))
	for i, p := range m.pages {
		out[i] = Page{Name: p.Name, Cells: make([][]string, len(p.Cells))}
		for r, row := range p.Cells {
			out[i].Cells[r] = append([]string(nil), row...)
		}
	}
	return out
}

// Sheets implements Workbook
func (m *Memory) Sheets(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.pages))
	for i, p := range m.pages {
		names[i] = p.Name
	}
	return names, nil
}

// Read implements Workbook
func (m *Memory) Read(ctx context.Context, sheet string, r Range) (Grid, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, err := m.page(sheet)
	if err != nil {
		return nil, err
	}

	g := NewGrid(r.Rows(), r.Cols())
	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			g[row][col] = Grid(p.Cells).Cell(r.StartRow+row, r.StartCol+col)
		}
	}
	return g, nil
}

// Write implements Workbook
func (m *Memory) Write(ctx context.Context, sheet string, r Range, g Grid) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.page(sheet)
	if err != nil {
		return err
	}

	for row := 0; row < len(g) && row < r.Rows(); row++ {
		for col := 0; col < len(g[row]) && col < r.Cols(); col++ {
			p.set(r.StartRow+row, r.StartCol+col, g[row][col])
		}
	}
	p.trim()
	return nil
}

// Clear implements Workbook
func (m *Memory) Clear(ctx context.Context, sheet string, r Range) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.page(sheet)
	if err != nil {
		return err
	}

	for row := r.StartRow; row <= r.EndRow && row < len(p.Cells); row++ {
		for col := r.StartCol; col <= r.EndCol && col < len(p.Cells[row]); col++ {
			p.Cells[row][col] = ""
		}
	}
	p.trim()
	return nil
}

// AddSheet implements Workbook. New sheets are appended at the end.
func (m *Memory) AddSheet(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}
	if _, err := m.page(name); err == nil {
		return fmt.Errorf("%w: %s", ErrSheetExists, name)
	}
	m.pages = append(m.pages, Page{Name: name})
	return nil
}

func (m *Memory) page(name string) (*Page, error) {
	for i := range m.pages {
		if m.pages[i].Name == name {
			return &m.pages[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSheet, name)
}

func (p *Page) set(row, col int, value string) {
	for len(p.Cells) <= row {
		p.Cells = append(p.Cells, nil)
	}
	for len(p.Cells[row]) <= col {
		p.Cells[row] = append(p.Cells[row], "")
	}
	p.Cells[row][col] = value
}

// trim drops trailing empty cells and rows so the persisted form stays small
func (p *Page) trim() {
	for r := range p.Cells {
		row := p.Cells[r]
		n := len(row)
		for n > 0 && row[n-1] == "" {
			n--
		}
		p.Cells[r] = row[:n]
	}
	n := len(p.Cells)
	for n > 0 && len(p.Cells[n-1]) == 0 {
		n--
	}
	p.Cells = p.Cells[:n]
}
