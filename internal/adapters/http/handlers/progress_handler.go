// Package handlers provides the HTTP handlers for the JSON API, the rendered
// progress pages and the health endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/dto"
	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

// ProgressHandler serves the semester progress JSON API.
type ProgressHandler struct {
	svc ports.ProgressService
}

// NewProgressHandler creates a new ProgressHandler with the given service port.
func NewProgressHandler(svc ports.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// ListSemesters handles GET /api/v1/semesters.
func (h *ProgressHandler) ListSemesters(w http.ResponseWriter, r *http.Request) {
	semesters, err := h.svc.ListSemesters(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSemesterListResponse(semesters))
}

// GetProgress handles GET /api/v1/semesters/{id}/progress.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	at, err := requestedAt(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProgress(r.Context(), semesterID(r), at)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProgressResponse(p))
}

// CurrentProgress handles GET /api/v1/progress.
func (h *ProgressHandler) CurrentProgress(w http.ResponseWriter, r *http.Request) {
	at, err := requestedAt(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.CurrentProgress(r.Context(), at)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProgressResponse(p))
}
