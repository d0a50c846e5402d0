package config

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// FieldError reports a single setting that failed validation.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func invalid(field string, value any, reason string) error {
	return &FieldError{Field: field, Value: value, Err: fmt.Errorf("%w: %s", ErrInvalidConfig, reason)}
}
