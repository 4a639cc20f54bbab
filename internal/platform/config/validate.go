package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Page.validate(),
		c.Catalog.validate(c.Page.DefaultSemester),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (p *PageConfig) validate() error {
	var errs []error

	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("page.title must not be empty"))
	}
	switch p.Locale {
	case "en", "de":
	default:
		errs = append(errs, fmt.Errorf("page.locale must be one of: en, de; got %q", p.Locale))
	}
	if strings.TrimSpace(p.DefaultSemester) == "" {
		errs = append(errs, errors.New("page.default_semester must not be empty"))
	}

	return errors.Join(errs...)
}

func (c *CatalogConfig) validate(defaultSemester string) error {
	var errs []error

	if strings.TrimSpace(c.ElementID) == "" {
		errs = append(errs, errors.New("catalog.element_id must not be empty"))
	}

	switch c.Source {
	case SourceStatic:
		errs = append(errs, validateSemesters(c.Semesters, defaultSemester))
	case SourceRemote:
		errs = append(errs, c.Remote.validate())
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be one of: static, remote; got %q", c.Source))
	}

	return errors.Join(errs...)
}

func validateSemesters(semesters []SemesterConfig, defaultSemester string) error {
	if len(semesters) == 0 {
		return errors.New("catalog.semesters must not be empty when source is static")
	}

	var errs []error
	seen := make(map[string]bool, len(semesters))

	for i, s := range semesters {
		if strings.TrimSpace(s.ID) == "" {
			errs = append(errs, fmt.Errorf("catalog.semesters[%d].id must not be empty", i))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("catalog.semesters[%d].id %q is a duplicate", i, s.ID))
		}
		seen[s.ID] = true

		if s.Start == "" {
			errs = append(errs, fmt.Errorf("catalog.semesters[%d].start must not be empty", i))
		}
		if s.End == "" {
			errs = append(errs, fmt.Errorf("catalog.semesters[%d].end must not be empty", i))
		}
	}

	if defaultSemester != "" && !seen[defaultSemester] {
		errs = append(errs, fmt.Errorf("page.default_semester %q is not declared in catalog.semesters", defaultSemester))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("catalog.remote.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("catalog.remote.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("catalog.remote.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("catalog.remote.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("catalog.remote.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("catalog.remote.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("catalog.remote.rate_limit.burst_size must be >= 1, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if strings.TrimSpace(t.ServiceName) == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
