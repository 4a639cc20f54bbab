package acl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"

	"github.com/jsamuelsen11/semester-progress/internal/adapters/clients/acl/term"
	"github.com/jsamuelsen11/semester-progress/internal/domain"
	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
	"github.com/jsamuelsen11/semester-progress/internal/platform/httpclient"
	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

var (
	_ ports.SemesterCatalog = (*CalendarClient)(nil)
	_ ports.HealthChecker   = (*CalendarClient)(nil)
)

// CalendarClient is the remote semester catalog. It reads terms from the
// academic calendar API and translates them with [term.ToDomainSemester].
type CalendarClient struct {
	req       *Requester
	client    *httpclient.Client
	elementID string
	logger    *slog.Logger
}

// NewCalendarClient returns a catalog backed by client. Semesters receive
// elementID since the calendar does not model page elements.
func NewCalendarClient(client *httpclient.Client, elementID string, logger *slog.Logger) *CalendarClient {
	return &CalendarClient{
		req:       NewRequester(client, logger),
		client:    client,
		elementID: cmp.Or(elementID, semester.DefaultElementID),
		logger:    logger,
	}
}

// ListSemesters fetches all terms ordered by start date. Terms the
// translator rejects are logged and skipped so one bad record does not hide
// the rest.
func (c *CalendarClient) ListSemesters(ctx context.Context) ([]semester.Semester, error) {
	var resp term.TermListResponseDTO
	if err := c.req.GetJSON(ctx, "/api/v1/terms", &resp); err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	semesters := make([]semester.Semester, 0, len(resp.Terms))
	for i := range resp.Terms {
		s, err := term.ToDomainSemester(&resp.Terms[i], c.elementID)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping invalid term",
				slog.String("operation", "ListSemesters"),
				slog.String("term_code", resp.Terms[i].Code),
				slog.Any("error", err),
			)
			continue
		}
		semesters = append(semesters, s)
	}

	slices.SortStableFunc(semesters, func(a, b semester.Semester) int {
		return a.Start.Compare(b.Start)
	})
	return semesters, nil
}

// GetSemester fetches one term by code. A term the calendar returns but the
// translator rejects is reported as domain.ErrUnavailable.
func (c *CalendarClient) GetSemester(ctx context.Context, id string) (*semester.Semester, error) {
	var dto term.TermDTO
	path := "/api/v1/terms/" + url.PathEscape(term.CodeFromID(id))
	if err := c.req.GetJSON(ctx, path, &dto); err != nil {
		return nil, fmt.Errorf("getting term for semester %q: %w", id, err)
	}

	s, err := term.ToDomainSemester(&dto, c.elementID)
	if err != nil {
		return nil, fmt.Errorf("translating term for semester %q: %w: %w", id, domain.ErrUnavailable, err)
	}
	return &s, nil
}

// Name returns the downstream identifier used in readiness results.
func (c *CalendarClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the circuit breaker state of the underlying client.
func (c *CalendarClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
