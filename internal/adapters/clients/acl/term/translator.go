package term

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

// ToDomainSemester converts a term into a validated semester. The term code
// becomes the lowercase semester id; elementID is applied because the
// calendar knows nothing about page elements.
func ToDomainSemester(dto *TermDTO, elementID string) (semester.Semester, error) {
	start, err := semester.ParseDate(dto.StartsOn)
	if err != nil {
		return semester.Semester{}, fmt.Errorf("term %q starts_on: %w", dto.Code, err)
	}
	end, err := semester.ParseDate(dto.EndsOn)
	if err != nil {
		return semester.Semester{}, fmt.Errorf("term %q ends_on: %w", dto.Code, err)
	}

	s := semester.Semester{
		ID:        IDFromCode(dto.Code),
		Name:      dto.Title,
		Start:     start,
		End:       end,
		ElementID: elementID,
	}
	if s.Name == "" {
		s.Name = dto.Code
	}
	if err := s.Validate(); err != nil {
		return semester.Semester{}, fmt.Errorf("term %q: %w", dto.Code, err)
	}
	return s, nil
}

// IDFromCode maps a calendar term code ("HS24") to a semester id ("hs24").
func IDFromCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// CodeFromID maps a semester id back to the calendar's term code.
func CodeFromID(id string) string {
	return strings.ToUpper(id)
}
