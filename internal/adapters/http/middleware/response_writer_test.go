package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_DefaultStatus(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	if rw.statusCode != http.StatusOK {
		t.Errorf("default statusCode = %d, want %d", rw.statusCode, http.StatusOK)
	}
	if rw.headerWritten {
		t.Error("headerWritten = true before any write")
	}
}

func TestResponseWriter_FirstWriteHeaderWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusNotFound)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("recorder code = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, _ = rw.Write([]byte("<div "))
	_, _ = rw.Write([]byte("id=\"progress-bar\">"))

	if rw.written != 23 {
		t.Errorf("written = %d, want 23", rw.written)
	}
	if !rw.headerWritten {
		t.Error("headerWritten = false after Write")
	}
	if rec.Body.String() != `<div id="progress-bar">` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestResponseWriter_ReusesWrapped(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())
	if again := newResponseWriter(rw); again != rw {
		t.Error("newResponseWriter wrapped an existing responseWriter")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
