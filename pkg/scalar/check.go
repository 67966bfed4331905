package scalar

import (
	"fmt"
	"strings"
)

// Result lists every key that failed its declared kind, in spec order.
type Result struct {
	Failures []Failure
}

// OK reports whether no key failed.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Err returns the failures as an *AggregateError, or nil when OK.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = &ValidationError{Failure: f}
	}
	return &AggregateError{Errors: errs}
}

// Check evaluates values against spec without side effects.
//
// The returned error is always a *ConfigError and means spec is malformed;
// evaluation stops at the first such key. Data mismatches never produce an
// error here, they are collected in the Result.
func Check(values Params, spec *TypeSpec, opts Options) (Result, error) {
	var res Result
	if spec == nil {
		return res, nil
	}

	for _, e := range spec.entries {
		if e.tag == nil {
			continue
		}
		raw, ok := e.tag.(string)
		if !ok {
			return Result{}, &ConfigError{
				Key:    e.key,
				Reason: fmt.Sprintf("Unexpected '%s', expected String or NULL.", typeName(e.tag)),
			}
		}

		tag := strings.ToLower(raw)

		// Absent and null values pass any declared type, unrecognized ones included.
		value, present := values[e.key]
		if (!present || isNull(value)) && opts.AllowNull {
			continue
		}

		kind, err := ParseKind(tag)
		if err != nil {
			return Result{}, &ConfigError{
				Key:    e.key,
				Reason: fmt.Sprintf("Unrecognized Scalar Type '%s'.", tag),
			}
		}

		if !kind.Satisfies(value, opts.SoftNumeric) {
			res.Failures = append(res.Failures, Failure{
				Key:   e.key,
				Kind:  kind,
				Tag:   tag,
				Value: value,
				Given: typeName(value),
			})
		}
	}

	return res, nil
}
