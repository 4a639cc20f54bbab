package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"page.title":            "Semester progress",
		"page.locale":           "en",
		"page.default_semester": "hs24",

		"catalog.source":     SourceStatic,
		"catalog.element_id": "progress-bar",

		"catalog.remote.base_url":                        "http://localhost:8081",
		"catalog.remote.timeout":                         "10s",
		"catalog.remote.retry.max_attempts":              defaultRetryMaxAttempts,
		"catalog.remote.retry.initial_interval":          "100ms",
		"catalog.remote.retry.max_interval":              "2s",
		"catalog.remote.retry.multiplier":                defaultRetryMultiplier,
		"catalog.remote.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"catalog.remote.circuit_breaker.timeout":         "30s",
		"catalog.remote.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"catalog.remote.rate_limit.requests_per_second":  0,
		"catalog.remote.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "semester-progress",
	}
}
