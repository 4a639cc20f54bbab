// Package health implements the readiness check registry.
package health

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/semester-progress/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe [ports.HealthRegistry]. Checks run in
// parallel on every readiness probe; a panicking check is reported as
// unhealthy instead of taking the probe down.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker. A later checker with the same name replaces the
// earlier one in CheckAll results.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// Len returns the number of registered checkers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.checkers)
}

// CheckAll runs all checks concurrently, without holding the lock, and
// returns results keyed by checker name.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			errs[i] = runCheck(ctx, c)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func runCheck(ctx context.Context, c ports.HealthChecker) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: health check panicked: %v", c.Name(), p)
		}
	}()
	return c.HealthCheck(ctx)
}
