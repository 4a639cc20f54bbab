package web_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/http/web"
	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

func newRenderer(t *testing.T, locale string) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer("Semester progress", locale)
	if err != nil {
		t.Fatalf("NewRenderer error = %v", err)
	}
	return r
}

func hs24() semester.Semester {
	return semester.Semester{
		ID:        "hs24",
		Name:      "Autumn semester 2024",
		Start:     time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		ElementID: "progress-bar",
	}
}

func TestNewRenderer_InvalidLocale(t *testing.T) {
	t.Parallel()

	if _, err := web.NewRenderer("x", "not a locale!"); err == nil {
		t.Error("NewRenderer error = nil, want parse error")
	}
}

func TestRenderer_Language(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		locale   string
		accept   string
		wantLang language.Tag
	}{
		{name: "empty header uses fallback", locale: "de", accept: "", wantLang: language.German},
		{name: "exact match", locale: "en", accept: "de", wantLang: language.German},
		{name: "regional variant", locale: "en", accept: "de-CH,de;q=0.9", wantLang: language.German},
		{name: "quality order", locale: "de", accept: "fr;q=0.9,en;q=0.8,de;q=0.1", wantLang: language.English},
		{name: "unsupported uses fallback", locale: "de", accept: "fr-FR", wantLang: language.German},
		{name: "malformed uses fallback", locale: "en", accept: ";;;=", wantLang: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := newRenderer(t, tt.locale).Language(tt.accept)
			if got != tt.wantLang {
				t.Errorf("Language(%q) = %v, want %v", tt.accept, got, tt.wantLang)
			}
		})
	}
}

func TestRenderer_Progress(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
	p := semester.Compute(at, hs24())

	tests := []struct {
		name string
		lang language.Tag
		want []string
	}{
		{
			name: "english",
			lang: language.English,
			want: []string{
				`<html lang="en">`,
				`<title>Semester progress</title>`,
				`<h1>Autumn semester 2024</h1>`,
				`<div id="progress-bar" style="width: 32%"></div>`,
				`aria-valuenow="32"`,
				"32% of the semester has passed.",
				"September 15, 2024 to December 20, 2024",
				"66 days remaining.",
			},
		},
		{
			name: "german",
			lang: language.German,
			want: []string{
				`<html lang="de">`,
				`<div id="progress-bar" style="width: 32%"></div>`,
				"32% des Semesters sind vorbei.",
				"15.9.2024 bis 20.12.2024",
				"Noch 66 Tage.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := newRenderer(t, "en").Progress(&buf, tt.lang, &p); err != nil {
				t.Fatalf("Progress error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("page missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestRenderer_ProgressPhases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		at        time.Time
		wantWidth string
		wantText  string
	}{
		{
			name:      "upcoming",
			at:        time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC),
			wantWidth: `style="width: 0%"`,
			wantText:  "The semester starts in 14 days.",
		},
		{
			name:      "finished",
			at:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			wantWidth: `style="width: 100%"`,
			wantText:  "The semester is over.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := semester.Compute(tt.at, hs24())
			var buf bytes.Buffer
			if err := newRenderer(t, "en").Progress(&buf, language.English, &p); err != nil {
				t.Fatalf("Progress error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.wantWidth) {
				t.Errorf("page missing %q", tt.wantWidth)
			}
			if !strings.Contains(buf.String(), tt.wantText) {
				t.Errorf("page missing %q", tt.wantText)
			}
		})
	}
}

func TestRenderer_EscapesElementID(t *testing.T) {
	t.Parallel()

	s := hs24()
	s.ElementID = `bar"><script>`
	p := semester.Compute(s.Start, s)

	var buf bytes.Buffer
	if err := newRenderer(t, "en").Progress(&buf, language.English, &p); err != nil {
		t.Fatalf("Progress error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("element id was not escaped:\n%s", buf.String())
	}
}

func TestRenderer_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lang language.Tag
		code int
		want string
	}{
		{name: "not found en", lang: language.English, code: http.StatusNotFound, want: "This semester does not exist."},
		{name: "not found de", lang: language.German, code: http.StatusNotFound, want: "Dieses Semester gibt es nicht."},
		{name: "bad request", lang: language.English, code: http.StatusBadRequest, want: "The requested date is not valid."},
		{name: "bad gateway de", lang: language.German, code: http.StatusBadGateway, want: "Der Semesterkalender ist zurzeit nicht erreichbar."},
		{name: "internal", lang: language.English, code: http.StatusInternalServerError, want: "Something went wrong."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := newRenderer(t, "en").Error(&buf, tt.lang, tt.code); err != nil {
				t.Fatalf("Error error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("page missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}
