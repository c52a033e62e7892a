package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "display.idle_timeout_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidThemes returns the list of registered theme names.
func ValidThemes() []string {
	return []string{"default", "contrast"}
}

// ValidLogLevels returns the list of valid log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidThemes(), c.UI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "ui.theme",
			Value:   c.UI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.UI.WheelStep <= 0 || c.UI.WheelStep > 50 {
		errors = append(errors, ValidationError{
			Field:   "ui.wheel_step",
			Value:   c.UI.WheelStep,
			Message: "must be in (0, 50]",
		})
	}

	if c.Display.IdleTimeoutMs < 100 {
		errors = append(errors, ValidationError{
			Field:   "display.idle_timeout_ms",
			Value:   c.Display.IdleTimeoutMs,
			Message: "must be at least 100",
		})
	}

	if c.Display.CycleIntervalMs < 100 {
		errors = append(errors, ValidationError{
			Field:   "display.cycle_interval_ms",
			Value:   c.Display.CycleIntervalMs,
			Message: "must be at least 100",
		})
	}

	if c.Projects.Path != "" {
		if _, err := os.Stat(c.Projects.Path); err != nil {
			errors = append(errors, ValidationError{
				Field:   "projects.path",
				Value:   c.Projects.Path,
				Message: "file does not exist or is not readable",
			})
		}
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
