package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/linnemanlabs/sift/internal/triage"
)

// htmlReport is the standalone report document. Row colors follow the
// original dashboard palette: red/orange/blue/green for
// Critical/High/Medium/Low.
const htmlReport = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SOC Alert Triage Report</title>
<style>
body { font-family: -apple-system, Segoe UI, sans-serif; margin: 2rem; color: #222; }
h1 { margin-bottom: 0; }
.meta { color: #777; font-size: 0.85rem; margin-bottom: 1.5rem; }
.summary { display: flex; gap: 1rem; margin: 1rem 0; }
.card { background: #f0f2f6; border-left: 4px solid #667eea; border-radius: 8px; padding: 12px 20px; }
.card .n { font-size: 1.4rem; font-weight: 600; }
.card.critical { border-left-color: #e74c3c; }
.card.high { border-left-color: #f39c12; }
.card.medium { border-left-color: #3498db; }
.card.low { border-left-color: #27ae60; }
.warn { color: #b45309; font-size: 0.9rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #e5e7eb; }
th { background: #f9fafb; }
tr.critical td:first-child { border-left: 4px solid #e74c3c; }
tr.high td:first-child { border-left: 4px solid #f39c12; }
tr.medium td:first-child { border-left: 4px solid #3498db; }
tr.low td:first-child { border-left: 4px solid #27ae60; }
</style>
</head>
<body>
<h1>SOC Alert Triage Report</h1>
<p class="meta">Run {{.Report.RunID}} &middot; generated {{.Report.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} &middot; {{.Report.InputCount}} records in</p>
<div class="summary">
<div class="card critical"><div class="n">{{index .Summary.ByPriority "Critical"}}</div>Critical</div>
<div class="card high"><div class="n">{{index .Summary.ByPriority "High"}}</div>High</div>
<div class="card medium"><div class="n">{{index .Summary.ByPriority "Medium"}}</div>Medium</div>
<div class="card low"><div class="n">{{index .Summary.ByPriority "Low"}}</div>Low</div>
<div class="card"><div class="n">{{printf "%.1f" .Summary.AverageRisk}}</div>Avg risk</div>
</div>
{{if .Report.Skipped}}<p class="warn">{{len .Report.Skipped}} record(s) skipped:
{{range .Report.Skipped}} [{{.Index}}] {{.Reason}};{{end}}</p>{{end}}
<table>
<thead><tr><th>Score</th><th>Priority</th><th>ID</th><th>Severity</th><th>Asset</th><th>Freq</th><th>Source</th><th>Timestamp</th><th>Explanation</th></tr></thead>
<tbody>
{{range .Report.Alerts}}<tr class="{{rowClass .Priority}}">
<td>{{printf "%.1f" .RiskScore}}</td><td>{{.Priority}}</td><td>{{.ID}}</td><td>{{.Severity}}</td><td>{{.AssetType}}</td><td>{{.Frequency}}</td><td>{{.Source}}</td><td>{{.Timestamp}}</td><td>{{.Explanation}}</td>
</tr>
{{end}}</tbody>
</table>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"rowClass": strings.ToLower,
}).Parse(htmlReport))

type htmlData struct {
	Report  *triage.Report
	Summary triage.Summary
}

// WriteHTML renders the full standalone report document to w.
func WriteHTML(w io.Writer, r *triage.Report, s triage.Summary) error {
	return htmlTmpl.Execute(w, htmlData{Report: r, Summary: s})
}

// WriteHTMLFile writes the report to path. It renders in memory first so a
// template failure never leaves a truncated file behind.
func WriteHTMLFile(path string, r *triage.Report, s triage.Summary) error {
	var buf strings.Builder
	if err := WriteHTML(&buf, r, s); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil { //nolint:gosec // G306: report is world-readable by design
		return fmt.Errorf("write html report: %w", err)
	}
	return nil
}
