package clock_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/semester-progress/internal/platform/clock"
)

func TestSystem_Now(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := clock.System{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("System.Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestFixed_Now(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)
	c := clock.Fixed{At: at}

	for range 3 {
		if got := c.Now(); !got.Equal(at) {
			t.Fatalf("Fixed.Now() = %v, want %v", got, at)
		}
	}
}
