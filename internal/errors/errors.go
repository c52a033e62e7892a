// Package errors provides centralized error definitions and error handling
// utilities for deckfolio. It defines sentinel errors for the project catalog
// and configuration layers, semantic error types with context wrapping, and
// classification helpers used when surfacing failures on the CLI.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for the project catalog.
var (
	// ErrEmptyCatalog indicates a catalog was loaded with no projects.
	ErrEmptyCatalog = errors.New("catalog contains no projects")
	// ErrProjectNotFound indicates a lookup for a project that does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDuplicateProject indicates two catalog entries share an ID.
	ErrDuplicateProject = errors.New("duplicate project id")
)

// ValidationError represents invalid input or state.
type ValidationError struct {
	Field   string // The field or input that failed validation
	Message string // Description of the validation failure
	Err     error  // Underlying error, if any
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error { return e.Err }

// WithErr attaches an underlying error for wrapping.
func (e *ValidationError) WithErr(err error) *ValidationError {
	e.Err = err
	return e
}

// ConfigError represents a failure to load or validate configuration.
type ConfigError struct {
	Path    string // The config file involved, if known
	Message string
	Err     error
}

// NewConfigError creates a ConfigError wrapping err.
func NewConfigError(message string, err error) *ConfigError {
	return &ConfigError{Message: message, Err: err}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := "config: " + e.Message
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Err }

// WithPath attaches the config file path for context.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// CatalogError represents a failure to load or validate the project catalog.
type CatalogError struct {
	Path string
	Err  error
}

// NewCatalogError creates a CatalogError wrapping err.
func NewCatalogError(path string, err error) *CatalogError {
	return &CatalogError{Path: path, Err: err}
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("catalog: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error { return e.Err }

// IsUserFacing reports whether an error is safe and useful to show directly
// to the user on the CLI, as opposed to internal errors that should only be
// logged.
func IsUserFacing(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return true
	}
	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		return true
	}
	return errors.Is(err, ErrEmptyCatalog)
}
