package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

var (
	semesterStart = time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	semesterEnd   = time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	testAt        = time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validSemester() semester.Semester {
	return semester.Semester{
		ID:        "hs24",
		Name:      "Autumn semester 2024",
		Start:     semesterStart,
		End:       semesterEnd,
		ElementID: semester.DefaultElementID,
	}
}

func validProgress() *semester.Progress {
	p := semester.Compute(testAt, validSemester())
	return &p
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
