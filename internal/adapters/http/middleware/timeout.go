package middleware

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/dto"
)

// Timeout bounds handler execution. The handler gets a context with the
// deadline and writes into a buffer; if it has not finished when the
// deadline passes, a 504 problem response is sent instead and whatever the
// handler writes afterwards is discarded.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flushTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				writeTimeout(w, r)
			}
		})
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusGatewayTimeout)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusGatewayTimeout),
		Status:   http.StatusGatewayTimeout,
		Detail:   "request did not complete in time",
		Instance: r.URL.RequestURI(),
	})
}

// timeoutWriter buffers the handler's response. mu guards every field
// because the handler goroutine and the timeout path race on it.
type timeoutWriter struct {
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flushTo copies the buffered response to w. Callers hold tw.mu.
func (tw *timeoutWriter) flushTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.wroteHeader {
		w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}
