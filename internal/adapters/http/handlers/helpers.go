package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/dto"
	"github.com/jsamuelsen11/semester-progress/internal/platform/logging"
)

// paramID is the chi URL parameter naming a semester.
const paramID = "id"

// semesterID extracts the semester id path parameter.
func semesterID(r *http.Request) string {
	return chi.URLParam(r, paramID)
}

// requestedAt returns the instant named by the optional ?at= query, or the
// zero time when absent.
func requestedAt(r *http.Request) (time.Time, error) {
	return dto.NewProgressQuery(r).Time()
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
