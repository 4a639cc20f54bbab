// Package catalog provides the config-backed semester catalog.
package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/semester-progress/internal/domain"
	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
	"github.com/jsamuelsen11/semester-progress/internal/platform/config"
	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

var _ ports.SemesterCatalog = (*Static)(nil)

// Static serves semesters declared in configuration. It is immutable after
// construction and safe for concurrent use.
type Static struct {
	semesters []semester.Semester
	byID      map[string]int
}

// NewStatic builds the catalog from cfg.Semesters. Semesters without an
// element id inherit cfg.ElementID, falling back to
// semester.DefaultElementID. Every semester must validate and ids must be
// unique.
func NewStatic(cfg config.CatalogConfig) (*Static, error) {
	defaultElement := cfg.ElementID
	if defaultElement == "" {
		defaultElement = semester.DefaultElementID
	}

	semesters := make([]semester.Semester, 0, len(cfg.Semesters))
	seen := make(map[string]bool, len(cfg.Semesters))
	var errs []error

	for i, sc := range cfg.Semesters {
		s, err := fromConfig(sc, defaultElement)
		if err != nil {
			errs = append(errs, fmt.Errorf("catalog.semesters[%d]: %w", i, err))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("catalog.semesters[%d]: duplicate id %q", i, s.ID))
			continue
		}
		seen[s.ID] = true
		semesters = append(semesters, s)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	slices.SortStableFunc(semesters, func(a, b semester.Semester) int {
		return cmp.Or(a.Start.Compare(b.Start), cmp.Compare(a.ID, b.ID))
	})

	byID := make(map[string]int, len(semesters))
	for i, s := range semesters {
		byID[s.ID] = i
	}

	return &Static{semesters: semesters, byID: byID}, nil
}

// ListSemesters returns a copy of all semesters ordered by start date.
func (c *Static) ListSemesters(_ context.Context) ([]semester.Semester, error) {
	return slices.Clone(c.semesters), nil
}

// GetSemester returns the semester with the given id or an error wrapping
// domain.ErrNotFound.
func (c *Static) GetSemester(_ context.Context, id string) (*semester.Semester, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("semester %q: %w", id, domain.ErrNotFound)
	}
	s := c.semesters[i]
	return &s, nil
}

// Name identifies the catalog in readiness results.
func (c *Static) Name() string {
	return "catalog"
}

// HealthCheck fails only when no semesters are configured.
func (c *Static) HealthCheck(_ context.Context) error {
	if len(c.semesters) == 0 {
		return fmt.Errorf("catalog: no semesters configured: %w", domain.ErrUnavailable)
	}
	return nil
}

func fromConfig(sc config.SemesterConfig, defaultElement string) (semester.Semester, error) {
	start, err := semester.ParseDate(sc.Start)
	if err != nil {
		return semester.Semester{}, fmt.Errorf("start: %w", err)
	}
	end, err := semester.ParseDate(sc.End)
	if err != nil {
		return semester.Semester{}, fmt.Errorf("end: %w", err)
	}

	s := semester.Semester{
		ID:        sc.ID,
		Name:      cmp.Or(sc.Name, sc.ID),
		Start:     start,
		End:       end,
		ElementID: cmp.Or(sc.ElementID, defaultElement),
	}
	if err := s.Validate(); err != nil {
		return semester.Semester{}, err
	}
	return s, nil
}
