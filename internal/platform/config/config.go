// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Catalog sources.
const (
	SourceStatic = "static"
	SourceRemote = "remote"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Page      PageConfig      `koanf:"page"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// PageConfig holds settings for the rendered progress page.
type PageConfig struct {
	Title           string `koanf:"title"`
	Locale          string `koanf:"locale"`
	DefaultSemester string `koanf:"default_semester"`
}

// CatalogConfig selects where semester boundaries come from.
type CatalogConfig struct {
	Source    string           `koanf:"source"`
	ElementID string           `koanf:"element_id"`
	Semesters []SemesterConfig `koanf:"semesters"`
	Remote    ClientConfig     `koanf:"remote"`
}

// SemesterConfig declares one semester for the static catalog. Start and End
// accept YYYY-MM-DD (UTC midnight) or RFC 3339.
type SemesterConfig struct {
	ID        string `koanf:"id"`
	Name      string `koanf:"name"`
	Start     string `koanf:"start"`
	End       string `koanf:"end"`
	ElementID string `koanf:"element_id"`
}

// ClientConfig holds downstream HTTP client settings for the academic
// calendar API.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
