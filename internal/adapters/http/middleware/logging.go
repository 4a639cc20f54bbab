package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/platform/logging"
)

// Logging stores a request-scoped logger carrying request_id and
// correlation_id in the context and logs each completed request. At debug
// level it also logs the request headers with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerAttrs(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// headerAttrs renders headers as sorted slog attributes, replacing the
// values of logging.SensitiveHeaders.
func headerAttrs(h http.Header) []any {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(h[k], ",")
		if logging.SensitiveHeaders[strings.ToLower(k)] {
			v = logging.RedactedValue
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return attrs
}
