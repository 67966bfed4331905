// Package scalar validates dynamically typed parameter values against
// declared primitive kinds.
//
// A call site hands over its own arguments as Params and a same-shaped
// TypeSpec of type tags. A nil tag opts a key out of checking:
//
//	func Resize(args ...any) error {
//	    spec := scalar.Positional("int", "int", nil)
//	    if _, err := scalar.Validate(scalar.Args(args...), spec, nil); err != nil {
//	        return err
//	    }
//	    // ...
//	}
//
// Recognized tags (case-insensitive): array, bool/boolean, float/double/real,
// int/integer, null/unset, object, string, scalar, numeric, callable and
// resource. Any other tag, or a tag that is neither a string nor nil, is a
// *ConfigError and is never downgraded.
//
// Options default to AllowNull. Overrides are merged over the defaults with
// MergeDefaults, so a nil *Overrides means "use the defaults":
//
//	ok, err := scalar.Validate(params, spec, &scalar.Overrides{
//	    ReportOnly:  scalar.Flag(true),
//	    SoftNumeric: scalar.Flag(true),
//	    Site:        scalar.Here(),
//	})
//
// In strict mode (the default) any mismatch is returned as an
// *AggregateError of *ValidationError. With ReportOnly each mismatch is
// logged as a warning and Validate returns false. Enforce panics instead of
// returning an error.
//
// SoftNumeric accepts values that loosely equal their int or float coercion:
// "3", " 3 ", "3.0" and 5.0 satisfy int, 5.5 and "12abc" do not. Booleans
// compare equal to their 0/1 coercion and so satisfy both numeric kinds.
package scalar
