package dashboard

import (
	"encoding/csv"
	"net/http"
	"strconv"
)

// handleExportCSV streams the filtered view as a CSV attachment, mirroring
// the page's download button. Same filter params as /api/v1/alerts.
func (a *API) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, `{"error":"invalid filter: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	rep, ok := a.store.Snapshot()
	if !ok {
		http.Error(w, `{"error":"no batch loaded"}`, http.StatusServiceUnavailable)
		return
	}
	filtered := f.Apply(rep.Alerts)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_alerts.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"alert_id", "risk_score", "priority", "severity", "asset_type", "frequency", "source", "timestamp", "explanation"})
	for _, al := range filtered {
		_ = cw.Write([]string{
			al.ID,
			strconv.FormatFloat(al.RiskScore, 'f', 1, 64),
			al.Priority,
			al.Severity,
			al.AssetType,
			strconv.Itoa(al.Frequency),
			al.Source,
			al.Timestamp,
			al.Explanation,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		a.logger.Error(r.Context(), err, "csv export write failed")
	}
}
