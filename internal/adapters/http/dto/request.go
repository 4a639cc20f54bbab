package dto

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/domain"
	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
)

// QueryAt is the query parameter that pins the evaluation instant.
const QueryAt = "at"

const msgInvalidAt = "must be an RFC 3339 timestamp or a YYYY-MM-DD date"

// ProgressQuery holds the optional query parameters of progress requests.
type ProgressQuery struct {
	At string
}

// NewProgressQuery reads the query parameters from r.
func NewProgressQuery(r *http.Request) ProgressQuery {
	return ProgressQuery{At: r.URL.Query().Get(QueryAt)}
}

// Time returns the requested instant, or the zero time when the parameter
// is absent. A malformed value yields a *domain.ValidationError on
// "query.at".
func (q ProgressQuery) Time() (time.Time, error) {
	at, err := semester.ParseDate(q.At)
	if err != nil {
		return time.Time{}, &domain.ValidationError{
			Fields: map[string]string{"query." + QueryAt: msgInvalidAt},
		}
	}
	return at, nil
}
