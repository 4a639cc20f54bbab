// Package term holds the academic calendar's wire types and their
// translation into domain semesters.
package term

// TermDTO matches the calendar's Term schema. Dates are YYYY-MM-DD or
// RFC 3339.
type TermDTO struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	StartsOn string `json:"starts_on"`
	EndsOn   string `json:"ends_on"`
}

// TermListResponseDTO matches the calendar's TermList schema.
type TermListResponseDTO struct {
	Terms []TermDTO `json:"terms"`
	Count int64     `json:"count"`
}
