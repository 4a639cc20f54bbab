// Package semester holds the Semester entity and the elapsed-time progress
// computation that drives the progress bar.
package semester

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/domain"
)

// DefaultElementID is the id of the page element whose width reflects progress.
const DefaultElementID = "progress-bar"

// Semester is a fixed academic date range. Start and End are the semester
// boundaries; ElementID names the page element the progress is rendered into.
type Semester struct {
	ID        string
	Name      string
	Start     time.Time
	End       time.Time
	ElementID string
}

// Validate checks business rules for the Semester entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (s *Semester) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if s.Start.IsZero() {
		fields["start"] = domain.MsgRequired
	}
	if s.End.IsZero() {
		fields["end"] = domain.MsgRequired
	}
	if !s.Start.IsZero() && !s.End.IsZero() && !s.Start.Before(s.End) {
		fields["end"] = "must be after start"
	}
	if strings.TrimSpace(s.ElementID) == "" {
		fields["element_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Duration returns the length of the semester.
func (s *Semester) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
