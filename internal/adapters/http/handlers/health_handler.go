package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthResponse is the body of the readiness endpoint.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every registered
// check passes (the semester catalog, and the calendar client when the
// catalog is remote), 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := HealthResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = statusOK
	}

	writeJSON(w, r, code, resp)
}
