package httpclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/semester-progress/internal/platform/config"
	"github.com/jsamuelsen11/semester-progress/internal/platform/httpclient"
	"github.com/jsamuelsen11/semester-progress/internal/platform/telemetry"
)

func testConfig(baseURL string) config.ClientConfig {
	return config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       50 * time.Millisecond,
			HalfOpenLimit: 1,
		},
	}
}

func statusServer(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(calls.Add(1))
		status := statuses[min(n, len(statuses))-1]
		w.WriteHeader(status)
		_, _ = io.WriteString(w, http.StatusText(status))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestGet_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		_, _ = io.WriteString(w, `{"terms":[]}`)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL+"/"), "calendar-api")

	resp, err := client.Get(context.Background(), "/api/v1/terms")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if gotPath != "/api/v1/terms" {
		t.Errorf("path = %q, want %q", gotPath, "/api/v1/terms")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestDo_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
		wantCode  int
		wantErr   bool
	}{
		{"5xx then success", []int{500, 502, 200}, 3, 200, false},
		{"429 then success", []int{429, 200}, 2, 200, false},
		{"4xx is final", []int{404}, 1, 404, false},
		{"exhausted keeps last response", []int{503}, 3, 503, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, calls := statusServer(t, tt.statuses...)
			cfg := testConfig(srv.URL)
			cfg.CircuitBreaker.MaxFailures = 10
			client := httpclient.New(cfg, "calendar-api")

			resp, err := client.Get(context.Background(), "/api/v1/terms")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil {
				t.Fatal("Get() response = nil")
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDo_PropagatesIDs(t *testing.T) {
	t.Parallel()

	var gotReq, gotCorr string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Header.Get(httpclient.HeaderRequestID)
		gotCorr = r.Header.Get(httpclient.HeaderCorrelationID)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx := httpclient.WithRequestID(context.Background(), "req-1")
	ctx = httpclient.WithCorrelationID(ctx, "corr-1")

	resp, err := httpclient.New(testConfig(srv.URL), "calendar-api").Get(ctx, "/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	_ = resp.Body.Close()

	if gotReq != "req-1" {
		t.Errorf("%s = %q, want %q", httpclient.HeaderRequestID, gotReq, "req-1")
	}
	if gotCorr != "corr-1" {
		t.Errorf("%s = %q, want %q", httpclient.HeaderCorrelationID, gotCorr, "corr-1")
	}
}

func TestDo_CircuitBreaker(t *testing.T) {
	t.Parallel()

	srv, calls := statusServer(t, 500, 500, 500, 500, 500, 500, 200)
	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "calendar-api")
	ctx := context.Background()

	if err := client.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck() before failures = %v, want nil", err)
	}

	for range 2 {
		resp, err := client.Get(ctx, "/")
		if err == nil {
			t.Fatal("Get() error = nil, want HTTP 500 error")
		}
		_ = resp.Body.Close()
	}

	if got := client.CircuitBreakerState(); got != "open" {
		t.Fatalf("state = %q, want open", got)
	}
	if err := client.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() with open breaker = nil, want error")
	}

	before := calls.Load()
	resp, err := client.Get(ctx, "/")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Get() error = %v, want ErrOpenState", err)
	}
	if resp != nil {
		t.Error("Get() response with open breaker != nil")
	}
	if calls.Load() != before {
		t.Error("open breaker let a request through")
	}

	time.Sleep(80 * time.Millisecond)
	if got := client.CircuitBreakerState(); got != "half-open" {
		t.Fatalf("state after timeout = %q, want half-open", got)
	}
	if err := client.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() with half-open breaker = nil, want degraded error")
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv, calls := statusServer(t, 503)
	cfg := testConfig(srv.URL)
	cfg.Retry.InitialInterval = time.Second
	cfg.Retry.MaxInterval = time.Second
	client := httpclient.New(cfg, "calendar-api")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	resp, err := client.Get(ctx, "/")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Get() error = %v, want context.DeadlineExceeded", err)
	}
	if resp != nil {
		_ = resp.Body.Close()
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestDo_RateLimited(t *testing.T) {
	t.Parallel()

	srv, _ := statusServer(t, 200)
	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	client := httpclient.New(cfg, "calendar-api")

	resp, err := client.Get(context.Background(), "/")
	if err != nil {
		t.Fatalf("first Get() error = %v", err)
	}
	_ = resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if resp, err := client.Get(ctx, "/"); err == nil {
		_ = resp.Body.Close()
		t.Fatal("second Get() error = nil, want rate limiter error")
	}
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://calendar:8080/"), "calendar-api",
		httpclient.WithLogger(nil))

	if got := client.Name(); got != "calendar-api" {
		t.Errorf("Name() = %q, want calendar-api", got)
	}
	if got := client.BaseURL(); got != "http://calendar:8080" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", got)
	}
	if got := client.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q, want closed", got)
	}
}

func TestDo_WithMetrics(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "semester-progress")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	srv, _ := statusServer(t, 200)
	client := httpclient.New(testConfig(srv.URL), "calendar-api", httpclient.WithMetrics(metrics))

	resp, err := client.Get(context.Background(), "/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	_ = resp.Body.Close()
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestDo_TransportErrorRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	transport := roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls.Add(1)
		return nil, errors.New("connection refused")
	})

	cfg := testConfig("http://calendar.invalid")
	cfg.CircuitBreaker.MaxFailures = 10
	client := httpclient.New(cfg, "calendar-api", httpclient.WithTransport(transport))

	resp, err := client.Get(context.Background(), "/")
	if err == nil {
		_ = resp.Body.Close()
		t.Fatal("Get() error = nil, want transport error")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}
