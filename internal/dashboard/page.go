package dashboard

import (
	"html/template"
	"net/http"
)

// The filter page is a single self-contained document: no build step, no
// asset pipeline. It drives the JSON API with the five filter controls and
// re-renders the table on every change.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SOC Alert Triage Dashboard</title>
<style>
body { font-family: -apple-system, Segoe UI, sans-serif; margin: 0; display: flex; color: #222; }
aside { width: 260px; min-height: 100vh; background: #f0f2f6; padding: 1.2rem; box-sizing: border-box; }
main { flex: 1; padding: 1.2rem 2rem; }
h1 { margin-top: 0; }
fieldset { border: none; padding: 0; margin: 0 0 1.2rem 0; }
legend { font-weight: 600; margin-bottom: 0.3rem; }
label.opt { display: block; font-size: 0.9rem; }
.cards { display: flex; gap: 1rem; margin: 1rem 0; }
.card { background: #f0f2f6; border-left: 4px solid #667eea; border-radius: 8px; padding: 10px 18px; }
.card .n { font-size: 1.3rem; font-weight: 600; }
.card.critical { border-left-color: #e74c3c; }
.card.high { border-left-color: #f39c12; }
.card.medium { border-left-color: #3498db; }
.card.low { border-left-color: #27ae60; }
.warn { color: #b45309; font-size: 0.9rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #e5e7eb; font-size: 0.92rem; }
th { background: #f9fafb; }
tr.critical td:first-child { border-left: 4px solid #e74c3c; }
tr.high td:first-child { border-left: 4px solid #f39c12; }
tr.medium td:first-child { border-left: 4px solid #3498db; }
tr.low td:first-child { border-left: 4px solid #27ae60; }
button { margin-top: 0.4rem; }
</style>
</head>
<body>
<aside>
<h2>Filters</h2>
<fieldset>
<legend>Risk score threshold: <span id="minScoreVal">{{.MinScore}}</span></legend>
<input type="range" id="minScore" min="0" max="100" step="5" value="{{.MinScore}}">
</fieldset>
<fieldset id="severity"><legend>Severity</legend></fieldset>
<fieldset id="assetType"><legend>Asset type</legend></fieldset>
<fieldset id="priority"><legend>Priority</legend></fieldset>
<fieldset id="source"><legend>Source</legend></fieldset>
<button id="reload">Reload batch</button>
<button id="download">Download CSV</button>
</aside>
<main>
<h1>SOC Alert Triage Dashboard</h1>
<div class="cards">
<div class="card critical"><div class="n" id="nCritical">0</div>Critical</div>
<div class="card high"><div class="n" id="nHigh">0</div>High</div>
<div class="card medium"><div class="n" id="nMedium">0</div>Medium</div>
<div class="card low"><div class="n" id="nLow">0</div>Low</div>
<div class="card"><div class="n" id="nAvg">0.0</div>Avg risk</div>
</div>
<p id="counts"></p>
<p class="warn" id="skipped"></p>
<table>
<thead><tr><th>Score</th><th>Priority</th><th>ID</th><th>Severity</th><th>Asset</th><th>Freq</th><th>Source</th><th>Timestamp</th><th>Explanation</th></tr></thead>
<tbody id="rows"></tbody>
</table>
</main>
<script>
const dims = {
  severity: ["low", "medium", "high"],
  assetType: ["standard", "important", "critical"],
  priority: ["Critical", "High", "Medium", "Low"],
  source: [],
};

function esc(s) {
  return String(s).replace(/[&<>"]/g, c => ({"&":"&amp;","<":"&lt;",">":"&gt;",'"':"&quot;"}[c]));
}

function renderOptions(dim, values) {
  const fs = document.getElementById(dim);
  const checked = new Set(selected(dim));
  fs.querySelectorAll("label").forEach(l => l.remove());
  for (const v of values) {
    const label = document.createElement("label");
    label.className = "opt";
    const box = document.createElement("input");
    box.type = "checkbox";
    box.value = v;
    box.checked = checked.size === 0 || checked.has(v);
    box.addEventListener("change", refresh);
    label.appendChild(box);
    label.appendChild(document.createTextNode(" " + v));
    fs.appendChild(label);
  }
}

function selected(dim) {
  return [...document.querySelectorAll("#" + dim + " input:checked")].map(b => b.value);
}

function query() {
  const p = new URLSearchParams();
  p.set("minScore", document.getElementById("minScore").value);
  for (const dim of Object.keys(dims)) {
    const boxes = document.querySelectorAll("#" + dim + " input");
    const on = selected(dim);
    // all boxes checked means no restriction; send nothing
    if (boxes.length > 0 && on.length < boxes.length) {
      for (const v of on) p.append(dim, v);
    }
    // none checked: send an impossible value so the dimension excludes everything
    if (boxes.length > 0 && on.length === 0) p.append(dim, "\u0000none");
  }
  return p;
}

async function refresh() {
  const resp = await fetch("/api/v1/alerts?" + query());
  if (!resp.ok) {
    document.getElementById("counts").textContent = "Failed to load alerts (" + resp.status + ")";
    return;
  }
  const data = await resp.json();

  if (dims.source.length === 0) {
    dims.source = [...new Set(data.alerts.map(a => a.source))].sort();
    renderOptions("source", dims.source);
  }

  document.getElementById("nCritical").textContent = data.summary.by_priority.Critical;
  document.getElementById("nHigh").textContent = data.summary.by_priority.High;
  document.getElementById("nMedium").textContent = data.summary.by_priority.Medium;
  document.getElementById("nLow").textContent = data.summary.by_priority.Low;
  document.getElementById("nAvg").textContent = data.summary.average_risk.toFixed(1);
  document.getElementById("counts").textContent =
    data.filtered + " of " + data.total + " alerts shown (run " + data.run_id + ")";
  document.getElementById("skipped").textContent = data.skipped.length > 0
    ? data.skipped.length + " record(s) skipped during load: " + data.skipped.map(s => "[" + s.index + "] " + s.reason).join("; ")
    : "";

  document.getElementById("rows").innerHTML = data.alerts.map(a =>
    '<tr class="' + a.priority.toLowerCase() + '">' +
    "<td>" + a.risk_score.toFixed(1) + "</td>" +
    "<td>" + esc(a.priority) + "</td>" +
    "<td>" + esc(a.alert_id) + "</td>" +
    "<td>" + esc(a.severity) + "</td>" +
    "<td>" + esc(a.asset_type) + "</td>" +
    "<td>" + a.frequency + "</td>" +
    "<td>" + esc(a.source) + "</td>" +
    "<td>" + esc(a.timestamp) + "</td>" +
    "<td>" + esc(a.explanation) + "</td>" +
    "</tr>").join("");
}

for (const [dim, values] of Object.entries(dims)) {
  if (values.length > 0) renderOptions(dim, values);
}
document.getElementById("minScore").addEventListener("input", () => {
  document.getElementById("minScoreVal").textContent = document.getElementById("minScore").value;
  refresh();
});
document.getElementById("reload").addEventListener("click", async () => {
  await fetch("/api/v1/reload", { method: "POST" });
  dims.source = [];
  refresh();
});
document.getElementById("download").addEventListener("click", () => {
  window.location = "/api/v1/alerts.csv?" + query();
});
refresh();
</script>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

func (a *API) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTmpl.Execute(w, struct{ MinScore int }{MinScore: int(a.riskThreshold)})
	if err != nil {
		a.logger.Error(r.Context(), err, "render dashboard page")
	}
}
