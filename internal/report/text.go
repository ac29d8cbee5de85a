// Package report renders triage results for the CLI (text summary) and as
// a standalone HTML document.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/linnemanlabs/sift/internal/score"
	"github.com/linnemanlabs/sift/internal/triage"
)

// WriteText writes the CLI summary: run header, per-tier counts, skipped
// record warnings, and the top-N alerts by risk score.
func WriteText(w io.Writer, r *triage.Report, s triage.Summary, topN int) error {
	fmt.Fprintf(w, "Triage run %s (%s)\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "%d records in, %d scored, %d skipped\n\n", r.InputCount, len(r.Alerts), len(r.Skipped))

	for _, warn := range r.Skipped {
		fmt.Fprintf(w, "warning: record %d skipped: %s\n", warn.Index, warn.Reason)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintln(w)
	}

	for _, p := range score.Priorities {
		fmt.Fprintf(w, "%-10s %d\n", p, s.ByPriority[p])
	}
	fmt.Fprintf(w, "%-10s %.1f\n", "Avg risk", s.AverageRisk)
	fmt.Fprintf(w, "%-10s %d\n\n", "Actionable", s.Actionable)

	if topN > len(r.Alerts) {
		topN = len(r.Alerts)
	}
	if topN == 0 {
		fmt.Fprintln(w, "No alerts to show.")
		return nil
	}

	fmt.Fprintf(w, "Top %d alerts by risk score:\n", topN)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tPRIORITY\tID\tSEVERITY\tASSET\tFREQ\tSOURCE\tEXPLANATION")
	for _, a := range r.Alerts[:topN] {
		fmt.Fprintf(tw, "%.1f\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			a.RiskScore, a.Priority, a.ID, a.Severity, a.AssetType, a.Frequency, a.Source, a.Explanation)
	}
	return tw.Flush()
}
