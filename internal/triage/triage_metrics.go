package triage

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the triage pipeline.
type Metrics struct {
	RunsTotal        prometheus.Counter
	RecordsTotal     *prometheus.CounterVec
	AlertsByPriority *prometheus.CounterVec
	BatchSize        prometheus.Histogram
	RunDuration      prometheus.Histogram
}

// NewMetrics registers and returns pipeline metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sift_triage_runs_total",
			Help: "Total pipeline runs.",
		}),
		RecordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sift_triage_records_total",
			Help: "Total input records processed, by outcome.",
		}, []string{"outcome"}), // scored | skipped
		AlertsByPriority: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sift_triage_alerts_total",
			Help: "Total scored alerts by priority tier.",
		}, []string{"priority"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sift_triage_batch_size",
			Help:    "Input records per pipeline run.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. ~16k
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sift_triage_run_duration_seconds",
			Help:    "Duration of pipeline runs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8), // 100us .. ~1.6s
		}),
	}

	reg.MustRegister(
		m.RunsTotal,
		m.RecordsTotal,
		m.AlertsByPriority,
		m.BatchSize,
		m.RunDuration,
	)

	return m
}

func (m *Metrics) observeRun(r *Report) {
	m.RunsTotal.Inc()
	m.RecordsTotal.WithLabelValues("scored").Add(float64(len(r.Alerts)))
	m.RecordsTotal.WithLabelValues("skipped").Add(float64(len(r.Skipped)))
	for _, a := range r.Alerts {
		m.AlertsByPriority.WithLabelValues(a.Priority).Inc()
	}
	m.BatchSize.Observe(float64(r.InputCount))
	m.RunDuration.Observe(r.Duration)
}
