package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// TestListAlerts_SpanAttributes verifies the alerts handler annotates the
// request span with run and result-count attributes.
func TestListAlerts_SpanAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	r, _ := newTestRouter(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "GET /api/v1/alerts",
		trace.WithSpanKind(trace.SpanKindServer))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?minScore=50", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	span.End()

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}

	attrs := make(map[string]any)
	for _, a := range spans[0].Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	if v, ok := attrs["sift.run.id"]; !ok || v != "run-1" {
		t.Errorf("sift.run.id = %v, want run-1", v)
	}
	if v, ok := attrs["sift.alerts.total"]; !ok || v != int64(2) {
		t.Errorf("sift.alerts.total = %v, want 2", v)
	}
	if v, ok := attrs["sift.alerts.filtered"]; !ok || v != int64(1) {
		t.Errorf("sift.alerts.filtered = %v, want 1", v)
	}
}
