package scalar

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// Validator applies the report policy on top of Check: strict calls turn
// failures into errors, report-only calls log them and return false.
// A Validator is immutable after New and safe for concurrent use.
type Validator struct {
	logger   *slog.Logger
	hooks    Hooks
	defaults Options
}

// Option defines a functional option for configuring the Validator.
type Option func(*Validator)

// WithLogger sets the structured logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(v *Validator) {
		v.hooks = hooks
	}
}

// WithDefaults replaces the built-in defaults that Overrides are merged onto.
func WithDefaults(defaults Options) Option {
	return func(v *Validator) {
		v.defaults = defaults
	}
}

// New creates a Validator. Without WithLogger it logs to slog.Default().
func New(opts ...Option) *Validator {
	v := &Validator{
		defaults: DefaultOptions(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// Defaults returns the options Overrides are merged onto.
func (v *Validator) Defaults() Options { return v.defaults }

// Validate checks values against spec using supplied merged over the
// validator defaults.
//
// A malformed spec always yields a *ConfigError. Otherwise, with ReportOnly
// unset any failure yields an *AggregateError; with ReportOnly set each
// failure is logged as a warning, every key is still checked, and the result
// is false with a nil error.
func (v *Validator) Validate(values Params, spec *TypeSpec, supplied *Overrides) (bool, error) {
	res, err := v.Inspect(values, spec, supplied)
	if err != nil {
		return false, err
	}
	return res.OK(), nil
}

// Inspect is Validate returning the full Result. Logging, hooks and the
// error policy are the same; in report-only mode err is nil unless the type spec
// is malformed.
func (v *Validator) Inspect(values Params, spec *TypeSpec, supplied *Overrides) (Result, error) {
	opts := MergeDefaults(supplied, v.defaults)
	ev := Event{Site: opts.Site, Keys: spec.Len(), ReportOnly: opts.ReportOnly}

	res, err := Check(values, spec, opts)
	if err != nil {
		v.logger.Error("invalid scalar spec", v.siteAttrs(opts.Site, "error", err)...)
		v.hooks.configError(err, ev)
		return Result{}, err
	}

	ev.Failures = len(res.Failures)
	for _, f := range res.Failures {
		v.hooks.failure(f, ev)
		if opts.ReportOnly {
			msg := (&ValidationError{Failure: f}).Error()
			v.logger.Warn(msg, v.siteAttrs(opts.Site,
				"key", f.Key.Label(),
				"expected", f.Tag,
				"given", f.Given,
			)...)
		}
	}
	v.hooks.check(ev)

	if opts.ReportOnly {
		return res, nil
	}
	return res, res.Err()
}

// Enforce is Validate for call sites that treat any error as a programming
// fault: it panics with the error instead of returning it.
func (v *Validator) Enforce(values Params, spec *TypeSpec, supplied *Overrides) bool {
	ok, err := v.Validate(values, spec, supplied)
	if err != nil {
		panic(err)
	}
	return ok
}

func (v *Validator) siteAttrs(site string, args ...any) []any {
	if site == "" {
		return args
	}
	return append(args, "site", site)
}

// Validate runs a Validator bound to slog.Default() with the built-in defaults.
func Validate(values Params, spec *TypeSpec, supplied *Overrides) (bool, error) {
	return New().Validate(values, spec, supplied)
}

// Enforce runs a Validator bound to slog.Default() and panics on any error.
func Enforce(values Params, spec *TypeSpec, supplied *Overrides) bool {
	return New().Enforce(values, spec, supplied)
}

// Here returns "file.go:line" of the function calling Here, for use as
// Overrides.Site at a validation call site.
func Here() string {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
