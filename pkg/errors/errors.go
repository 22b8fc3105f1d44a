package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and props validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigurationError reports a severity that has no entry in the appearance table.
type ConfigurationError struct {
	Severity string
}

// NewConfigurationError constructs a ConfigurationError for the given severity value.
func NewConfigurationError(severity string) error {
	return &ConfigurationError{Severity: severity}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("configuration error: unknown severity %q", e.Severity)
}

// MalformedDetailError reports detail info that is present but has no short text.
type MalformedDetailError struct {
	Label string
}

// NewMalformedDetailError constructs a MalformedDetailError for the badge with the given label.
func NewMalformedDetailError(label string) error {
	return &MalformedDetailError{Label: label}
}

func (e *MalformedDetailError) Error() string {
	if e == nil {
		return ""
	}
	if e.Label != "" {
		return fmt.Sprintf("malformed detail [%s]: short text is required", e.Label)
	}
	return "malformed detail: short text is required"
}
