package server

import (
	"html/template"
	"net/http"
	"net/url"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
dialog { width: 90%; border: 1px solid #888; border-radius: 6px; }
textarea { width: 100%; font-family: monospace; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.25rem 0.75rem; text-align: left; }
</style>
</head>
<body>
`

const pageFoot = `</body>
</html>
`

var pageFuncs = template.FuncMap{"pathEscape": url.PathEscape}

var (
	markdownPage = template.Must(template.New("markdown").Parse(pageHead + `<dialog open>
<h2>{{.Title}}</h2>
<textarea id="markdown" rows="30" readonly>{{.Markdown}}</textarea>
<p><button onclick="navigator.clipboard.writeText(document.getElementById('markdown').value)">Copy</button></p>
</dialog>
` + pageFoot))

	projectsPage = template.Must(template.New("projects").Parse(pageHead + `<h2>{{.Title}}</h2>
<table>
<tr><th>Name</th><th>ID</th></tr>
{{range .Projects}}<tr><td>{{.Name}}</td><td>{{.ID}}</td></tr>
{{end}}</table>
` + pageFoot))

	indexPage = template.Must(template.New("index").Funcs(pageFuncs).Parse(pageHead + `<h2>{{.Title}}</h2>
<ul>
{{range .Sheets}}<li>{{.Name}}:
<a href="/sheets/{{pathEscape .Name}}/markdown">markdown</a>
<a href="/sheets/{{pathEscape .Name}}/entries">entries</a>
<form method="post" action="/sheets/{{pathEscape .Name}}/pull" style="display:inline"><button>pull</button></form>
</li>
{{end}}</ul>
<p><a href="/markdown">all markdown</a> <a href="/projects">projects</a></p>
` + pageFoot))
)

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("render page failed", "path", r.URL.Path, "error", err)
	}
}
