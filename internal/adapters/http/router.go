// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	pageHandler *handlers.PageHandler,
	progressHandler *handlers.ProgressHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Rendered pages.
	r.Get("/", pageHandler.Current)
	r.Get("/semesters/{id}", pageHandler.Semester)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/semesters", progressHandler.ListSemesters)
		r.Get("/semesters/{id}/progress", progressHandler.GetProgress)
		r.Get("/progress", progressHandler.CurrentProgress)
	})

	return r
}
