// Package dto provides HTTP response data transfer objects, query parsing,
// and RFC 9457 Problem Details error responses for the inbound HTTP adapter
// layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

// SemesterResponse represents a single semester in HTTP responses.
type SemesterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Start     string `json:"start"`
	End       string `json:"end"`
	ElementID string `json:"element_id"`
}

// SemesterListResponse represents a list of semesters in HTTP responses.
type SemesterListResponse struct {
	Semesters []SemesterResponse `json:"semesters"`
	Count     int                `json:"count"`
}

// ProgressResponse is the evaluated progress of one semester. Width is the
// CSS value applied to the element named by ElementID.
type ProgressResponse struct {
	Semester         SemesterResponse `json:"semester"`
	At               string           `json:"at"`
	Percent          int              `json:"percent"`
	Width            string           `json:"width"`
	Phase            string           `json:"phase"`
	ElapsedSeconds   int64            `json:"elapsed_seconds"`
	RemainingSeconds int64            `json:"remaining_seconds"`
}

// ToSemesterResponse converts a domain Semester to its HTTP representation.
func ToSemesterResponse(s *semester.Semester) SemesterResponse {
	return SemesterResponse{
		ID:        s.ID,
		Name:      s.Name,
		Start:     s.Start.UTC().Format(time.RFC3339),
		End:       s.End.UTC().Format(time.RFC3339),
		ElementID: s.ElementID,
	}
}

// ToSemesterListResponse converts a slice of semesters.
func ToSemesterListResponse(semesters []semester.Semester) SemesterListResponse {
	items := make([]SemesterResponse, len(semesters))
	for i := range semesters {
		items[i] = ToSemesterResponse(&semesters[i])
	}
	return SemesterListResponse{
		Semesters: items,
		Count:     len(items),
	}
}

// ToProgressResponse converts a domain Progress.
func ToProgressResponse(p *semester.Progress) ProgressResponse {
	return ProgressResponse{
		Semester:         ToSemesterResponse(&p.Semester),
		At:               p.At.UTC().Format(time.RFC3339),
		Percent:          p.Percent,
		Width:            p.Width(),
		Phase:            p.Phase.String(),
		ElapsedSeconds:   int64(p.Elapsed / time.Second),
		RemainingSeconds: int64(p.Remaining / time.Second),
	}
}
