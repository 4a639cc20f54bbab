// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
	"github.com/jsamuelsen11/semester-progress/internal/platform/logging"
	"github.com/jsamuelsen11/semester-progress/internal/platform/telemetry"
	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

var _ ports.ProgressService = (*ProgressService)(nil)

// ProgressService implements ports.ProgressService. It looks semesters up in
// the catalog and evaluates them with semester.Compute; the arithmetic lives
// in the domain package.
type ProgressService struct {
	catalog   ports.SemesterCatalog
	clock     ports.Clock
	defaultID string
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewProgressService creates a ProgressService. defaultID names the semester
// served by CurrentProgress. A nil metrics disables recording; a nil logger
// discards output.
func NewProgressService(
	catalog ports.SemesterCatalog,
	clock ports.Clock,
	defaultID string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *ProgressService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ProgressService{
		catalog:   catalog,
		clock:     clock,
		defaultID: defaultID,
		metrics:   metrics,
		logger:    logger,
	}
}

// ListSemesters returns every semester in the catalog.
func (s *ProgressService) ListSemesters(ctx context.Context) ([]semester.Semester, error) {
	s.logger.DebugContext(ctx, "listing semesters")

	semesters, err := s.catalog.ListSemesters(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list semesters",
			slog.String("operation", "ListSemesters"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return semesters, nil
}

// GetProgress evaluates semester id at at, or at the clock's current time
// when at is zero.
func (s *ProgressService) GetProgress(ctx context.Context, id string, at time.Time) (*semester.Progress, error) {
	sem, err := s.catalog.GetSemester(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch semester",
			slog.String("operation", "GetProgress"),
			slog.String("semester_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if at.IsZero() {
		at = s.clock.Now()
	}

	p := semester.Compute(at, *sem)
	s.record(ctx, &p)
	return &p, nil
}

// CurrentProgress evaluates the default semester.
func (s *ProgressService) CurrentProgress(ctx context.Context, at time.Time) (*semester.Progress, error) {
	return s.GetProgress(ctx, s.defaultID, at)
}

// DefaultSemesterID returns the id served by CurrentProgress.
func (s *ProgressService) DefaultSemesterID() string {
	return s.defaultID
}

func (s *ProgressService) record(ctx context.Context, p *semester.Progress) {
	s.logger.InfoContext(ctx, "evaluated semester progress",
		slog.String("semester_id", p.Semester.ID),
		slog.Time("at", p.At),
		slog.Int("percent", p.Percent),
		slog.String("phase", p.Phase.String()),
	)

	if s.metrics == nil {
		return
	}
	id := telemetry.AttrSemester.String(p.Semester.ID)
	s.metrics.ProgressEvaluations.Add(ctx, 1,
		metric.WithAttributes(id, telemetry.AttrPhase.String(p.Phase.String())))
	s.metrics.ProgressPercent.Record(ctx, int64(p.Percent), metric.WithAttributes(id))
}
