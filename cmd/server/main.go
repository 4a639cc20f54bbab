// Package main is the entry point for the semester progress service. It
// wires all dependencies using samber/do v2, starts the HTTP server, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/catalog"
	"github.com/jsamuelsen11/semester-progress/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/semester-progress/internal/adapters/http"
	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/web"
	"github.com/jsamuelsen11/semester-progress/internal/app"
	"github.com/jsamuelsen11/semester-progress/internal/platform/clock"
	"github.com/jsamuelsen11/semester-progress/internal/platform/config"
	"github.com/jsamuelsen11/semester-progress/internal/platform/health"
	"github.com/jsamuelsen11/semester-progress/internal/platform/httpclient"
	"github.com/jsamuelsen11/semester-progress/internal/platform/logging"
	"github.com/jsamuelsen11/semester-progress/internal/platform/telemetry"
	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	// calendarServiceName labels the downstream calendar API in client
	// metrics, spans and readiness results.
	calendarServiceName = "calendar"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("configuration loaded",
		slog.String("profile", profile),
		slog.String("catalog_source", cfg.Catalog.Source),
		slog.String("default_semester", cfg.Page.DefaultSemester),
	)

	ctx := context.Background()
	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Bind before serving so a busy port fails startup.
	addr, err := server.Listen()
	if err != nil {
		return err
	}
	logger.Info("listening", slog.String("addr", addr.String()))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := providers.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. The providers are
// nil when telemetry is disabled; metrics then record into the global no-op
// provider.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		metrics, err := telemetry.NewMetrics(otel.GetMeterProvider(), cfg.Telemetry.ServiceName)
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}
		return &otelProviders{metrics: metrics}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// catalogChecker is the catalog as seen by main: a semester source that
// also reports readiness.
type catalogChecker interface {
	ports.SemesterCatalog
	ports.HealthChecker
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (catalogChecker, error) {
		switch cfg.Catalog.Source {
		case config.SourceRemote:
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(cfg.Catalog.Remote, calendarServiceName,
				httpclient.WithMetrics(metrics),
				httpclient.WithLogger(logger),
			)
			return acl.NewCalendarClient(client, cfg.Catalog.ElementID, logger), nil
		default:
			return catalog.NewStatic(cfg.Catalog)
		}
	})

	do.Provide(injector, func(i do.Injector) (ports.ProgressService, error) {
		cat := do.MustInvoke[catalogChecker](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		// The registry is resolved here so the catalog's readiness check is
		// registered exactly once, alongside its only consumer.
		do.MustInvoke[ports.HealthRegistry](i).Register(cat)

		return app.NewProgressService(cat, clock.System{}, cfg.Page.DefaultSemester, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*web.Renderer, error) {
		return web.NewRenderer(cfg.Page.Title, cfg.Page.Locale)
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		svc := do.MustInvoke[ports.ProgressService](i)
		renderer := do.MustInvoke[*web.Renderer](i)
		return handlers.NewPageHandler(svc, renderer), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProgressHandler, error) {
		svc := do.MustInvoke[ports.ProgressService](i)
		return handlers.NewProgressHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pageH := do.MustInvoke[*handlers.PageHandler](i)
		progressH := do.MustInvoke[*handlers.ProgressHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(pageH, progressH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
