// Package telemetry initializes OpenTelemetry tracing and metrics for the
// service and owns the metric instruments it records.
//
//	tp, err := telemetry.InitTracer(ctx, "semester-progress", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
//	mp, err := telemetry.InitMeter(ctx, "semester-progress", telemetry.ExporterOTLP, "http://otel-collector:4318")
//	defer mp.Shutdown(ctx)
//
//	metrics, err := telemetry.NewMetrics(mp, "semester-progress")
//	metrics.ProgressEvaluations.Add(ctx, 1, metric.WithAttributes(telemetry.AttrSemester.String("hs24")))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrUnsupportedExporter is returned for exporter names other than
// ExporterStdout and ExporterOTLP.
var ErrUnsupportedExporter = errors.New("unsupported exporter")

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrSemester    = attribute.Key("semester.id")
	AttrPhase       = attribute.Key("semester.phase")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// ProgressEvaluations counts progress computations per semester and phase.
	ProgressEvaluations metric.Int64Counter
	// ProgressPercent is the most recently computed percentage per semester.
	ProgressPercent metric.Int64Gauge
}

// InitTracer creates and registers a global TracerProvider together with the
// W3C trace-context and baggage propagators. The provider must be shut down
// when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider backed by a
// periodic reader. The provider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates every instrument on a meter named after the service.
// Any MeterProvider works, including the global no-op provider when
// telemetry is disabled.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var (
		m    Metrics
		errs []error
	)

	m.ServerRequestDuration, errs = histogram(meter, errs,
		"http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal, errs = counter(meter, errs,
		"http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration, errs = histogram(meter, errs,
		"http.client.request.duration", "Duration of outgoing HTTP requests")
	m.ClientRequestTotal, errs = counter(meter, errs,
		"http.client.request.total", "Total number of outgoing HTTP requests", "{request}")
	m.ProgressEvaluations, errs = counter(meter, errs,
		"semester.progress.evaluations", "Number of semester progress computations", "{evaluation}")

	gauge, err := meter.Int64Gauge(
		"semester.progress.percent",
		metric.WithDescription("Most recently computed semester progress"),
		metric.WithUnit("%"),
	)
	if err != nil {
		errs = append(errs, fmt.Errorf("creating semester.progress.percent: %w", err))
	}
	m.ProgressPercent = gauge

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

func histogram(meter metric.Meter, errs []error, name, desc string) (metric.Float64Histogram, []error) {
	h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h, errs
}

func counter(meter metric.Meter, errs []error, name, desc, unit string) (metric.Int64Counter, []error) {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c, errs
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		host, err := hostPort(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		host, err := hostPort(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// hostPort extracts host:port from an endpoint URL
// ("http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) (string, error) {
	if endpoint == "" {
		return "", errors.New("otlp exporter requires an endpoint")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, nil
	}
	return u.Host, nil
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
