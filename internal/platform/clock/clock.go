// Package clock provides the wall-clock implementations of ports.Clock.
package clock

import (
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Clock = System{}
	_ ports.Clock = Fixed{}
)

// System reads the operating system clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Used in tests and for previews.
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.At
}
