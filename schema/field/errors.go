package field

import (
	"errors"
	"fmt"
)

// ValidationError reports a field value rejected by Check. It signals bad
// client input: callers surfacing it over HTTP should map it to a 400-class
// response.
type ValidationError struct {
	Name string // field name
	Err  error  // underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("acanthe: invalid value for field %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a new ValidationError for the given field.
func NewValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// ConfigError reports a misconfigured field declaration. It signals misuse
// by the schema author, not bad input: callers surfacing it over HTTP should
// map it to a 500-class response. Configuration errors are recorded on
// Descriptor.Err at declaration time and surfaced when the schema is loaded.
type ConfigError struct {
	Name string // field name
	Err  error  // underlying configuration error
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("acanthe: invalid configuration for field %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError returns a new ConfigError for the given field.
func NewConfigError(name string, err error) *ConfigError {
	return &ConfigError{Name: name, Err: err}
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e)
}

// invalidf records a validation failure for the given descriptor.
func invalidf(d *Descriptor, format string, args ...any) error {
	return NewValidationError(d.Name, fmt.Errorf(format, args...))
}

// misusef records a configuration failure for the given descriptor.
func misusef(d *Descriptor, format string, args ...any) error {
	return NewConfigError(d.Name, fmt.Errorf(format, args...))
}
