package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks misuse of the validator: a tag that is neither a string
	// nor nil, or a string that names no kind.
	ErrConfig = errors.New("scalar: configuration error")
	// ErrValidation marks a value that does not match its declared kind.
	ErrValidation = errors.New("scalar: validation failed")
)

// ConfigError reports a defect in the calling code. It is never downgraded by ReportOnly.
type ConfigError struct {
	Key    Key
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Scalar Enforce Call-Error: %s", e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// Failure is a single value that did not match its declared kind.
type Failure struct {
	Key   Key
	Kind  Kind
	Tag   string // lowercased tag as written by the caller
	Value any
	Given string // runtime type of Value
}

// ValidationError wraps a Failure as an error.
type ValidationError struct {
	Failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Scalar Enforcement Error: Expected scalar type '%s' for index %s, '%s' given.",
		e.Tag, e.Key, e.Given)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
