package ics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind of every error returned while building
	// a parameter, property or component.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError reports which field failed validation and why. It unwraps
// to ErrInvalidArgument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field string, format string, args ...interface{}) error {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}
