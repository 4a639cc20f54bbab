package ports

import (
	"context"

	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

// SemesterCatalog defines the port that supplies semester boundaries.
// Implemented by the static (config-backed) catalog and by the ACL client for
// the downstream academic calendar API; called by the application layer.
type SemesterCatalog interface {
	// ListSemesters returns all known semesters ordered by start date.
	ListSemesters(ctx context.Context) ([]semester.Semester, error)

	// GetSemester returns a single semester by ID.
	// Returns domain.ErrNotFound if the semester does not exist.
	GetSemester(ctx context.Context, id string) (*semester.Semester, error)
}
