// Package web renders the server-side progress page. The page carries the
// progress element with its width style already applied, so no client-side
// scripting is involved.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// ContentType is the media type of every rendered page.
const ContentType = "text/html; charset=utf-8"

// Renderer executes the page templates in the negotiated language.
type Renderer struct {
	tmpl     *template.Template
	title    string
	fallback language.Tag
	matcher  language.Matcher
	catalog  catalog.Catalog
}

// NewRenderer parses the embedded templates. title is the document title;
// locale ("en" or "de") is used when Accept-Language matches nothing.
func NewRenderer(title, locale string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	fallback, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing page locale %q: %w", locale, err)
	}

	cat, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("building message catalog: %w", err)
	}

	return &Renderer{
		tmpl:     tmpl,
		title:    title,
		fallback: fallback,
		matcher:  language.NewMatcher(supported),
		catalog:  cat,
	}, nil
}

// Language picks the page language for an Accept-Language header value.
func (r *Renderer) Language(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.fallback
	}
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return r.fallback
	}
	return supported[idx]
}

type page struct {
	Lang    string
	Title   string
	Heading string
}

type progressPage struct {
	page
	Range     string
	ElementID string
	Style     template.CSS
	Percent   int
	Summary   string
	Status    string
}

type errorPage struct {
	page
	Message string
}

// Progress writes the progress page for p.
func (r *Renderer) Progress(w io.Writer, lang language.Tag, p *semester.Progress) error {
	pr := r.printer(lang)
	layout := dateLayout(lang)

	heading := p.Semester.Name
	if heading == "" {
		heading = p.Semester.ID
	}

	data := progressPage{
		page: page{Lang: lang.String(), Title: r.title, Heading: heading},
		Range: pr.Sprintf(msgRange,
			p.Semester.Start.UTC().Format(layout),
			p.Semester.End.UTC().Format(layout),
		),
		ElementID: p.Semester.ElementID,
		Style:     template.CSS("width: " + p.Width()), //nolint:gosec // width is "<int>%"
		Percent:   p.Percent,
		Summary:   pr.Sprintf(msgPercent, p.Percent),
		Status:    status(pr, p),
	}
	return r.tmpl.ExecuteTemplate(w, "progress", data)
}

// Error writes the error page for an HTTP status code.
func (r *Renderer) Error(w io.Writer, lang language.Tag, code int) error {
	pr := r.printer(lang)
	data := errorPage{
		page: page{
			Lang:    lang.String(),
			Title:   r.title,
			Heading: pr.Sprintf(msgErrorHeading, code),
		},
		Message: pr.Sprintf(errorMessage(code)),
	}
	return r.tmpl.ExecuteTemplate(w, "error", data)
}

func (r *Renderer) printer(lang language.Tag) *message.Printer {
	return message.NewPrinter(lang, message.Catalog(r.catalog))
}

func status(pr *message.Printer, p *semester.Progress) string {
	switch p.Phase {
	case semester.PhaseUpcoming:
		return pr.Sprintf(msgUpcoming, days(p.Semester.Start.Sub(p.At)))
	case semester.PhaseInProgress:
		return pr.Sprintf(msgInProgress, days(p.Remaining))
	default:
		return pr.Sprintf(msgFinished)
	}
}

// days rounds a positive duration up to whole days.
func days(d time.Duration) int {
	const day = 24 * time.Hour
	return int((d + day - 1) / day)
}

func errorMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return msgBadRequest
	case http.StatusNotFound:
		return msgNotFound
	case http.StatusBadGateway:
		return msgUnavailable
	default:
		return msgInternal
	}
}

func dateLayout(lang language.Tag) string {
	if l, ok := dateLayouts[lang]; ok {
		return l
	}
	return time.DateOnly
}
