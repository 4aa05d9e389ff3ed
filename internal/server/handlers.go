package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xolan/clocksheet/internal/entry"
	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/timeutil"
)

// sheetName extracts the {name} parameter. chi matches against RawPath
// when the request carries one (an escaped "/" in the name), leaving the
// parameter encoded; otherwise it is already decoded.
func sheetName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	infos, err := s.services.Workbook.List(r.Context())
	if err != nil {
		s.writeError(w, r, "failed to list sheets", err)
		return
	}
	s.renderPage(w, r, indexPage, struct {
		Title  string
		Sheets []service.SheetInfo
	}{"clocksheet", infos})
}

// listSheets handles GET /sheets
func (s *Server) listSheets(w http.ResponseWriter, r *http.Request) {
	infos, err := s.services.Workbook.List(r.Context())
	if err != nil {
		s.writeError(w, r, "failed to list sheets", err)
		return
	}
	if infos == nil {
		infos = []service.SheetInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

// sheetMarkdown handles GET /sheets/{name}/markdown[?format=text]
func (s *Server) sheetMarkdown(w http.ResponseWriter, r *http.Request) {
	name := sheetName(r)
	out, err := s.services.Report.Render(r.Context(), name)
	if err != nil {
		s.writeError(w, r, "failed to render markdown", err)
		return
	}
	s.writeMarkdown(w, r, "Markdown "+name, out)
}

// allMarkdown handles GET /markdown
func (s *Server) allMarkdown(w http.ResponseWriter, r *http.Request) {
	out, err := s.services.Report.RenderAll(r.Context())
	if err != nil {
		s.writeError(w, r, "failed to render markdown", err)
		return
	}
	s.writeMarkdown(w, r, "Markdown (all sheets)", out)
}

func (s *Server) writeMarkdown(w http.ResponseWriter, r *http.Request, title, markdown string) {
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(markdown))
		return
	}
	s.renderPage(w, r, markdownPage, struct{ Title, Markdown string }{title, markdown})
}

// projects handles GET /projects
func (s *Server) projects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.services.Catalog.Projects(r.Context())
	if err != nil {
		s.writeError(w, r, "failed to load projects", err)
		return
	}
	s.renderPage(w, r, projectsPage, struct {
		Title    string
		Projects []entry.Project
	}{"Projects", projects})
}

// sheetEntries handles GET /sheets/{name}/entries
func (s *Server) sheetEntries(w http.ResponseWriter, r *http.Request) {
	raw, err := s.services.Catalog.Entries(r.Context(), sheetName(r))
	if err != nil {
		s.writeError(w, r, "failed to load time entries", err)
		return
	}
	writeRawJSON(w, raw)
}

// pullSheet handles POST /sheets/{name}/pull[?totals=true&from=&to=]
func (s *Server) pullSheet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	loc := s.services.Workbook.Location()

	opts := service.PullOptions{}
	opts.Totals, _ = strconv.ParseBool(q.Get("totals"))
	if from := q.Get("from"); from != "" {
		opts.Start = timeutil.APIBound(from, loc, false)
	}
	if to := q.Get("to"); to != "" {
		opts.End = timeutil.APIBound(to, loc, true)
	}

	result, err := s.services.Timesheet.Pull(r.Context(), sheetName(r), opts)
	if err != nil {
		s.writeError(w, r, "failed to pull time entries", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
