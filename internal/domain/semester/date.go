package semester

import (
	"fmt"
	"time"
)

// ParseDate accepts YYYY-MM-DD, read as midnight UTC, or an RFC 3339
// timestamp. The empty string yields the zero time.
func ParseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, v, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither YYYY-MM-DD nor RFC 3339", v)
	}
	return t, nil
}
