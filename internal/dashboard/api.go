// Package dashboard serves the interactive triage UI: an embedded filter
// page plus a JSON/CSV API over the current in-memory batch.
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/sift/internal/score"
	"github.com/linnemanlabs/sift/internal/triage"
	"github.com/linnemanlabs/sift/internal/triage/memstore"
)

// ReloadFunc re-reads the input file and runs the pipeline, producing a
// fresh report for the batch store.
type ReloadFunc func(ctx context.Context) (*triage.Report, error)

// API holds dependencies for HTTP handlers.
type API struct {
	logger        log.Logger
	store         *memstore.Store
	reload        ReloadFunc
	riskThreshold float64
}

// New creates a new API handler. riskThreshold seeds the page's default
// minimum-score filter; it never affects stored scores.
func New(logger log.Logger, store *memstore.Store, reload ReloadFunc, riskThreshold float64) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if store == nil {
		panic(xerrors.New("batch store is required"))
	}
	if reload == nil {
		panic(xerrors.New("reload func is required"))
	}
	return &API{
		logger:        logger,
		store:         store,
		reload:        reload,
		riskThreshold: riskThreshold,
	}
}

// RegisterRoutes attaches dashboard endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Get("/", a.handlePage)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/alerts", a.handleListAlerts)
		r.Get("/alerts.csv", a.handleExportCSV)
		r.Post("/reload", a.handleReload)
	})
}

// alertsResponse is the payload behind GET /api/v1/alerts.
type alertsResponse struct {
	RunID       string               `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Total       int                  `json:"total"`
	Filtered    int                  `json:"filtered"`
	Skipped     []triage.SkipWarning `json:"skipped"`
	Summary     triage.Summary       `json:"summary"`
	Alerts      []score.Scored       `json:"alerts"`
}

func (a *API) handleListAlerts(w http.ResponseWriter, r *http.Request) {
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

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.String("sift.run.id", rep.RunID),
		attribute.Int("sift.alerts.total", len(rep.Alerts)),
		attribute.Int("sift.alerts.filtered", len(filtered)),
	)

	resp := alertsResponse{
		RunID:       rep.RunID,
		GeneratedAt: rep.GeneratedAt,
		Total:       len(rep.Alerts),
		Filtered:    len(filtered),
		Skipped:     rep.Skipped,
		Summary:     triage.Summarize(filtered, a.riskThreshold),
		Alerts:      filtered,
	}
	if resp.Skipped == nil {
		resp.Skipped = []triage.SkipWarning{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (a *API) handleReload(w http.ResponseWriter, r *http.Request) {
	rep, err := a.reload(r.Context())
	if err != nil {
		// keep serving the previous batch
		a.logger.Error(r.Context(), err, "reload failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	a.store.Set(rep)

	a.logger.Info(r.Context(), "batch reloaded",
		"run_id", rep.RunID,
		"scored", len(rep.Alerts),
		"skipped", len(rep.Skipped),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"run_id":  rep.RunID,
		"scored":  len(rep.Alerts),
		"skipped": len(rep.Skipped),
	})
}

// filterFromQuery builds a triage.Filter from repeatable query params:
// minScore, severity, assetType, priority, source. Absent params leave
// their dimension unrestricted.
func filterFromQuery(r *http.Request) (triage.Filter, error) {
	q := r.URL.Query()
	f := triage.Filter{
		Severities: q["severity"],
		AssetTypes: q["assetType"],
		Priorities: q["priority"],
		Sources:    q["source"],
	}
	if raw := q.Get("minScore"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return triage.Filter{}, err
		}
		f.MinScore = v
	}
	return f, nil
}
