package ports

import "context"

// HealthChecker is implemented by components that can report their health,
// such as the remote academic-calendar client.
type HealthChecker interface {
	// Name identifies the component in readiness responses ("calendar-api").
	Name() string

	// HealthCheck returns nil when healthy. Implementations must respect
	// context cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns results keyed by
	// checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
