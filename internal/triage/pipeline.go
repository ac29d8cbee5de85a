package triage

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/oklog/ulid/v2"

	"github.com/linnemanlabs/sift/internal/alert"
	"github.com/linnemanlabs/sift/internal/score"
)

// Pipeline runs a batch of raw records through normalize, score, and rank.
// It is synchronous and single-pass: each Run operates on its own slice with
// no shared state, so a Pipeline is safe for concurrent Runs.
type Pipeline struct {
	engine  *score.Engine
	logger  log.Logger
	metrics *Metrics
}

// NewPipeline creates a pipeline around a validated scoring engine. logger
// may be nil (a nop logger is substituted); metrics may be nil to disable
// instrumentation.
func NewPipeline(engine *score.Engine, logger log.Logger, metrics *Metrics) *Pipeline {
	if logger == nil {
		logger = log.Nop()
	}
	return &Pipeline{
		engine:  engine,
		logger:  logger,
		metrics: metrics,
	}
}

// Engine exposes the pipeline's scoring engine, mainly for its configured
// risk threshold.
func (p *Pipeline) Engine() *score.Engine {
	return p.engine
}

// Run normalizes and scores every record in the batch. Records that fail
// normalization are skipped with a warning, never aborting the run. The
// returned report is sorted descending by risk score with alert ID as the
// ascending tiebreak.
func (p *Pipeline) Run(ctx context.Context, records []alert.Raw) *Report {
	start := time.Now()
	r := &Report{
		RunID:       ulid.Make().String(),
		GeneratedAt: start,
		InputCount:  len(records),
		Alerts:      make([]score.Scored, 0, len(records)),
	}

	L := p.logger.With("run_id", r.RunID)

	for i, raw := range records {
		a, err := alert.Normalize(raw)
		if err != nil {
			w := SkipWarning{Index: i, AlertID: "?", Reason: err.Error()}
			var ve *alert.ValidationError
			if errors.As(err, &ve) {
				w.AlertID = ve.AlertID
			}
			r.Skipped = append(r.Skipped, w)
			L.Warn(ctx, "skipping record", "index", i, "reason", err.Error())
			continue
		}
		r.Alerts = append(r.Alerts, p.engine.Score(a))
	}

	sortAlerts(r.Alerts)
	r.Duration = time.Since(start).Seconds()

	if p.metrics != nil {
		p.metrics.observeRun(r)
	}

	L.Info(ctx, "triage run complete",
		"input", r.InputCount,
		"scored", len(r.Alerts),
		"skipped", len(r.Skipped),
		"duration", r.Duration,
	)
	return r
}

// sortAlerts orders by risk score descending, then alert ID ascending.
// The sort is stable so equal (score, ID) pairs keep input order.
func sortAlerts(alerts []score.Scored) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].RiskScore != alerts[j].RiskScore {
			return alerts[i].RiskScore > alerts[j].RiskScore
		}
		return alerts[i].ID < alerts[j].ID
	})
}
