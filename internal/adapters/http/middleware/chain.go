package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/platform/telemetry"
)

// Stack returns the service middleware in execution order, outermost first.
// A nil metrics skips metric recording; a non-positive timeout omits the
// Timeout middleware.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if timeout > 0 {
		mws = append(mws, Timeout(timeout))
	}
	return mws
}

// Chain composes middlewares so that the first argument runs first:
// Chain(a, b)(h) equals a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
