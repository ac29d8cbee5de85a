package triage

import (
	"time"

	"github.com/linnemanlabs/sift/internal/score"
)

// SkipWarning records a raw record that failed normalization and was
// excluded from the batch.
type SkipWarning struct {
	Index   int    `json:"index"` // position in the input batch
	AlertID string `json:"alert_id"`
	Reason  string `json:"reason"`
}

// Report is the outcome of one pipeline run: every valid alert scored and
// sorted descending by risk score (ties break on alert ID ascending), plus a
// warning per skipped record. A Report is immutable after Run returns.
type Report struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	InputCount  int            `json:"input_count"`
	Alerts      []score.Scored `json:"alerts"`
	Skipped     []SkipWarning  `json:"skipped,omitempty"`
	Duration    float64        `json:"duration_seconds"`
}
