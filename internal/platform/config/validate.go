// internal/platform/config/validate.go
package config

import (
	"errors"
	"fmt"
	"time"

	"subscanner/internal/core/domain"
	"subscanner/internal/platform/validator"
)

// Validate revisa la configuración ya normalizada y retorna todos los problemas juntos.
// El dominio se valida aparte (domain.Target.Validate) para distinguir ese error.
func (c Config) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	add(ValidateNonNegativeInt("workers", c.Workers))
	add(ValidateNonNegativeDuration("scan_timeout", c.ScanTimeout))

	add(ValidatePositiveDuration("http.timeout", c.HTTP.Timeout))
	add(ValidateRequiredString("http.user_agent", c.HTTP.UserAgent))
	add(ValidateIntRange("http.max_retries", c.HTTP.MaxRetries, 0, 10))
	add(ValidateNonNegativeDuration("http.grace_period", c.HTTP.GracePeriod))

	add(ValidateEnum("resolver.backend", c.Resolver.Backend,
		[]string{string(domain.ResolverBackendSystem), string(domain.ResolverBackendDNS)}))
	if domain.ResolverBackend(c.Resolver.Backend) == domain.ResolverBackendDNS && !validator.IsHostPort(c.Resolver.Nameserver) {
		add(fmt.Errorf("resolver.nameserver must be host:port, got %q", c.Resolver.Nameserver))
	}
	add(ValidatePositiveInt("resolver.workers", c.Resolver.Workers))
	add(ValidatePositiveDuration("resolver.lookup_timeout", c.Resolver.LookupTimeout))

	if c.Output.Format != "" {
		if _, err := domain.ParseExportFormat(c.Output.Format); err != nil {
			add(fmt.Errorf("output.format: %w: %q", err, c.Output.Format))
		}
	}
	add(ValidateEnum("ui.mode", c.UI.Mode, []string{"pretty", "plain", "quiet"}))
	add(ValidateEnum("log_level", c.LogLevel, []string{"debug", "info", "warn", "warning", "error", "err"}))

	if len(c.Sources.Disable) > 0 && len(c.Sources.EnableOnly) > 0 {
		add(errors.New("sources.disable and sources.enable_only are mutually exclusive"))
	}

	return errors.Join(errs...)
}

// ValidateRequiredString validates that a required string field is not empty.
func ValidateRequiredString(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required and cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveInt validates that an int field is positive (> 0).
func ValidatePositiveInt(fieldName string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %d", fieldName, value)
	}
	return nil
}

// ValidateNonNegativeInt validates that an int field is non-negative (>= 0).
func ValidateNonNegativeInt(fieldName string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s cannot be negative, got %d", fieldName, value)
	}
	return nil
}

// ValidateIntRange validates that an int field is within [min, max].
func ValidateIntRange(fieldName string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", fieldName, min, max, value)
	}
	return nil
}

// ValidatePositiveDuration validates that a duration is positive.
func ValidatePositiveDuration(fieldName string, value time.Duration) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %v", fieldName, value)
	}
	return nil
}

// ValidateNonNegativeDuration validates that a duration is zero or positive.
func ValidateNonNegativeDuration(fieldName string, value time.Duration) error {
	if value < 0 {
		return fmt.Errorf("%s cannot be negative, got %v", fieldName, value)
	}
	return nil
}

// ValidateEnum validates that a string value is one of the allowed options.
func ValidateEnum(fieldName, value string, allowed []string) error {
	for _, option := range allowed {
		if value == option {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v, got %s", fieldName, allowed, value)
}
