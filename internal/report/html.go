package report

import (
	"html/template"
	"io"

	"github.com/mcstats/mcstats/internal/models"
)

const layout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #999; padding: 3px 8px; }
th { background: #eee; }
footer { color: #777; font-size: smaller; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}
<table>
<tr><th colspan="2">{{.Title}}</th></tr>
<tr><td colspan="2">{{.Description}}</td></tr>
{{range .Entries}}<tr><td>{{.Name}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}
<footer>generated by mcstats at {{.GeneratedAt.Format "2006-01-02 15:04:05"}} &middot; report {{.ID}}</footer>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("layout").Parse(layout))

// WriteHTML renders the report as a standalone HTML document with one table
// per section.
func WriteHTML(w io.Writer, r *models.Report) error {
	return htmlTemplate.Execute(w, r)
}
