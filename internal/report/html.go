package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/reqlens/reqlens/internal/correlate"
	"github.com/reqlens/reqlens/internal/stats"
)

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"duration": func(g *correlate.Group) string {
		ms, ok := g.DurationMs.Get()
		if !ok {
			return "—"
		}
		return FormatDuration(ms)
	},
	"request": func(g *correlate.Group) string {
		method, ok := g.Method.Get()
		if !ok {
			return ""
		}
		return method + " " + g.URL.Or("")
	},
	"status": func(g *correlate.Group) string {
		status, ok := g.ResponseStatus.Get()
		if !ok {
			return "—"
		}
		return fmt.Sprint(status)
	},
	"rowClass": func(g *correlate.Group) string {
		switch {
		case g.HasErrors:
			return "error"
		case g.HasWarnings:
			return "warn"
		default:
			return "ok"
		}
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Log Report: {{.Source}}</title>
<style>
body { font-family: monospace; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
tr.error td { background: #ffe5e5; }
tr.warn td { background: #fff6d9; }
.counts span { margin-right: 1.5em; }
</style>
</head>
<body>
<h1>Log Report: {{.Source}}</h1>
<p class="counts">
<span>total {{.Stats.Total}}</span>
<span>errors {{.Stats.Errors}}</span>
<span>warnings {{.Stats.Warnings}}</span>
<span>infos {{.Stats.Infos}}</span>
<span>debugs {{.Stats.Debugs}}</span>
</p>
<table>
<tr><th>Request</th><th>Call</th><th>Status</th><th>Duration</th><th>Start</th><th>Env</th></tr>
{{range .Groups}}<tr class="{{rowClass .}}">
<td>{{.RequestID}}</td>
<td>{{request .}}</td>
<td>{{status .}}</td>
<td>{{duration .}}</td>
<td>{{.StartTime.Or "—"}}</td>
<td>{{.Environment.Or "—"}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// HTML renders the report as a standalone HTML document.
func HTML(sourceLabel string, st stats.Stats, groups []correlate.Group) (string, error) {
	data := struct {
		Source string
		Stats  stats.Stats
		Groups []*correlate.Group
	}{Source: sourceLabel, Stats: st}
	for i := range groups {
		data.Groups = append(data.Groups, &groups[i])
	}

	var sb strings.Builder
	if err := htmlTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return sb.String(), nil
}
