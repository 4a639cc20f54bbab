package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/semester-progress/internal/platform/telemetry"
)

// OTEL tests are NOT parallel because they modify the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

// routedHandler mounts the middleware on a chi router so the route pattern
// is available after routing.
func routedHandler(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Get("/semesters/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]any {
	attrs := make(map[attribute.Key]any)
	for _, a := range span.Attributes() {
		attrs[a.Key] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_NamesSpanByRoutePattern(t *testing.T) {
	exporter := setupTracer(t)

	rec := httptest.NewRecorder()
	routedHandler(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/semesters/hs24", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].Name(); got != "HTTP GET /semesters/{id}" {
		t.Errorf("span name = %q, want %q", got, "HTTP GET /semesters/{id}")
	}

	attrs := spanAttrs(spans[0])
	if attrs["http.route"] != "/semesters/{id}" {
		t.Errorf("http.route = %v", attrs["http.route"])
	}
	if attrs["http.target"] != "/semesters/hs24" {
		t.Errorf("http.target = %v", attrs["http.target"])
	}
	if attrs["http.status_code"] != int64(http.StatusOK) {
		t.Errorf("http.status_code = %v", attrs["http.status_code"])
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Name != "HTTP GET unmatched" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "HTTP GET unmatched")
	}
}

func TestOpenTelemetry_ErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	routedHandler(nil, http.StatusBadGateway).ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/semesters/hs24", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status code = %v, want Error", spans[0].Status.Code)
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/semesters/hs24", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	routedHandler(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want the incoming one", got)
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	setupTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	handler := routedHandler(metrics, http.StatusNotFound)
	for _, id := range []string{"hs24", "fs25"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/semesters/"+id, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			found = true
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 {
				t.Fatalf("request total = %#v, want one point shared by both ids", m.Data)
			}
			dp := sum.DataPoints[0]
			if dp.Value != 2 {
				t.Errorf("request total = %d, want 2", dp.Value)
			}
			if v, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute); v.AsString() != "/semesters/{id}" {
				t.Errorf("route attr = %q", v.AsString())
			}
			if v, _ := dp.Attributes.Value(telemetry.AttrResult); v.AsString() != "error" {
				t.Errorf("result attr = %q, want error", v.AsString())
			}
		}
	}
	if !found {
		t.Error("http.server.request.total not recorded")
	}
}
