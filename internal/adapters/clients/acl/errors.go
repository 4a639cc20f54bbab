// Package acl is the anti-corruption layer for the downstream academic
// calendar API. It speaks the calendar's "term" vocabulary on the wire and
// hands domain semesters to the rest of the service. DTOs and their
// translation live in acl/term; request execution and error mapping live
// here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/semester-progress/internal/domain"
)

// maxErrorBodySize caps how much of an error body is read.
const maxErrorBodySize = 64 << 10

// problemDetail is the subset of an RFC 9457 body the calendar returns.
type problemDetail struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// TranslateHTTPError maps a downstream error response to a domain error.
// 404 becomes domain.ErrNotFound. Every other status means the calendar
// could not answer and becomes domain.ErrUnavailable, since callers of this
// read-only API cannot correct the request.
func TranslateHTTPError(resp *http.Response) error {
	detail := parseProblemDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	}
	return fmt.Errorf("calendar returned %d %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
}

func parseProblemDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return ""
	}
	if pd.Detail != "" {
		return pd.Detail
	}
	return pd.Title
}
