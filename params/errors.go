// SPDX-License-Identifier: MIT

package params

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter indicates the configuration requires a table or
	// coefficient the record does not supply.
	ErrMissingParameter = errors.New("params: missing parameter")

	// ErrRangeViolation indicates a coefficient outside its documented domain.
	ErrRangeViolation = errors.New("params: value out of range")

	// ErrShape indicates a table whose dimensions disagree with the declared
	// classes, regions or sex count.
	ErrShape = errors.New("params: table shape mismatch")

	// ErrInvalidConfig indicates an unknown enum value or an impossible flat
	// configuration field.
	ErrInvalidConfig = errors.New("params: invalid configuration")
)

// FieldError identifies the field that failed validation.
// It unwraps to one of the package sentinels.
type FieldError struct {
	Field  string
	Detail string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("params: %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("params: %s: %s: %v", e.Field, e.Detail, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, err error, format string, args ...any) error {
	return &FieldError{Field: field, Detail: fmt.Sprintf(format, args...), Err: err}
}
