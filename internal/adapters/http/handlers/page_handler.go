package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/dto"
	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/web"
	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
	"github.com/jsamuelsen11/semester-progress/internal/platform/logging"
	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

// PageHandler serves the rendered progress pages.
type PageHandler struct {
	svc      ports.ProgressService
	renderer *web.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(svc ports.ProgressService, renderer *web.Renderer) *PageHandler {
	return &PageHandler{svc: svc, renderer: renderer}
}

// Current handles GET / with the default semester.
func (h *PageHandler) Current(w http.ResponseWriter, r *http.Request) {
	lang := h.renderer.Language(r.Header.Get("Accept-Language"))

	at, err := requestedAt(r)
	if err != nil {
		h.renderError(w, r, lang, err)
		return
	}

	p, err := h.svc.CurrentProgress(r.Context(), at)
	if err != nil {
		h.renderError(w, r, lang, err)
		return
	}
	h.renderProgress(w, r, lang, p)
}

// Semester handles GET /semesters/{id}.
func (h *PageHandler) Semester(w http.ResponseWriter, r *http.Request) {
	lang := h.renderer.Language(r.Header.Get("Accept-Language"))

	at, err := requestedAt(r)
	if err != nil {
		h.renderError(w, r, lang, err)
		return
	}

	p, err := h.svc.GetProgress(r.Context(), semesterID(r), at)
	if err != nil {
		h.renderError(w, r, lang, err)
		return
	}
	h.renderProgress(w, r, lang, p)
}

func (h *PageHandler) renderProgress(w http.ResponseWriter, r *http.Request, lang language.Tag, p *semester.Progress) {
	var buf bytes.Buffer
	if err := h.renderer.Progress(&buf, lang, p); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render progress page",
			slog.String("semester_id", p.Semester.ID),
			slog.Any("error", err),
		)
		h.renderError(w, r, lang, err)
		return
	}
	writeHTML(w, lang, http.StatusOK, buf.Bytes())
}

// renderError writes the localized error page with the status dto.StatusCode
// assigns to err. If even that page fails, a plain-text body is sent.
func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, lang language.Tag, err error) {
	code := dto.StatusCode(err)

	var buf bytes.Buffer
	if renderErr := h.renderer.Error(&buf, lang, code); renderErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render error page",
			slog.Int("status", code),
			slog.Any("error", renderErr),
		)
		http.Error(w, http.StatusText(code), code)
		return
	}
	writeHTML(w, lang, code, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, lang language.Tag, status int, body []byte) {
	h := w.Header()
	h.Set("Content-Type", web.ContentType)
	h.Set("Content-Language", lang.String())
	h.Set("Vary", "Accept-Language")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
