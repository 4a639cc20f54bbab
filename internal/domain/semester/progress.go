package semester

import (
	"strconv"
	"time"
)

// Bounds of the rendered percentage.
const (
	PercentMin = 0
	PercentMax = 100
)

// Progress is the evaluated state of a semester at one instant.
type Progress struct {
	Semester  Semester
	At        time.Time
	Percent   int
	Phase     Phase
	Elapsed   time.Duration
	Remaining time.Duration
}

// Width returns the CSS width value for the progress element, e.g. "32%".
func (p Progress) Width() string {
	return strconv.Itoa(p.Percent) + "%"
}

// Percentage returns ceil(100 * (now - start) / (end - start)) clamped to
// [PercentMin, PercentMax]. Timestamps are compared at millisecond
// resolution. The lower clamp wins, so a degenerate interval (end <= start)
// yields PercentMin up to start and PercentMax after both bounds.
func Percentage(now, start, end time.Time) int {
	total := end.Sub(start).Milliseconds()
	elapsed := now.Sub(start).Milliseconds()

	switch {
	case elapsed <= 0:
		return PercentMin
	case elapsed >= total:
		return PercentMax
	}

	// 0 < elapsed < total, so the quotient is in (0, 100].
	return int(ceilDiv(elapsed*PercentMax, total))
}

// Compute evaluates the semester at now.
func Compute(now time.Time, s Semester) Progress {
	p := Progress{
		Semester: s,
		At:       now,
		Percent:  Percentage(now, s.Start, s.End),
	}

	switch {
	case now.Before(s.Start):
		p.Phase = PhaseUpcoming
		p.Remaining = s.Duration()
	case now.Before(s.End):
		p.Phase = PhaseInProgress
		p.Elapsed = now.Sub(s.Start)
		p.Remaining = s.End.Sub(now)
	default:
		p.Phase = PhaseFinished
		p.Elapsed = s.Duration()
	}

	return p
}

// ceilDiv divides two positive integers rounding up.
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
