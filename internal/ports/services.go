package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

// ProgressService defines the service port for semester progress queries.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProgressService interface {
	// ListSemesters returns all semesters known to the catalog.
	ListSemesters(ctx context.Context) ([]semester.Semester, error)

	// GetProgress evaluates the semester with the given ID at the instant at.
	// A zero at means "now" as reported by the service clock.
	// Returns domain.ErrNotFound if the semester does not exist.
	GetProgress(ctx context.Context, id string, at time.Time) (*semester.Progress, error)

	// CurrentProgress evaluates the default semester at the instant at.
	// A zero at means "now" as reported by the service clock.
	CurrentProgress(ctx context.Context, at time.Time) (*semester.Progress, error)

	// DefaultSemesterID returns the ID of the semester shown when none is
	// requested explicitly.
	DefaultSemesterID() string
}
