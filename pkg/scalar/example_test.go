package scalar_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/scalarguard/pkg/scalar"
)

// ExampleValidator_Validate shows the strict policy: every mismatch is
// collected and returned as one error.
func ExampleValidator_Validate() {
	v := scalar.New(scalar.WithDefaults(scalar.Options{AllowNull: true}))

	spec := scalar.NewTypeSpec().
		Field("id", "int").
		Field("name", "string").
		Field("tags", "array")

	ok, err := v.Validate(scalar.NamedParams(map[string]any{
		"id":   "7",
		"name": "ada",
		"tags": nil,
	}), spec, nil)

	fmt.Println(ok)
	fmt.Println(err)
	// Output:
	// false
	// Scalar Enforcement Error: Expected scalar type 'int' for index 'id', 'string' given.
}

// ExampleValidator_Validate_softNumeric accepts numeric strings for int keys.
func ExampleValidator_Validate_softNumeric() {
	v := scalar.New()

	ok, err := v.Validate(scalar.Args("7", 2.0, "x"), scalar.Positional("int", "int", nil),
		&scalar.Overrides{SoftNumeric: scalar.Flag(true)})

	fmt.Println(ok, err)
	// Output:
	// true <nil>
}

// ExampleValidator_Validate_reportOnly logs failures and keeps going.
func ExampleValidator_Validate_reportOnly() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := scalar.New(scalar.WithLogger(logger))

	ok, err := v.Validate(scalar.Args(1, 2), scalar.Positional("string", "bool"),
		&scalar.Overrides{ReportOnly: scalar.Flag(true)})

	fmt.Println(ok, err)
	// Output:
	// false <nil>
}

// ExampleCheck_configError shows that an unknown tag is reported as a
// configuration error regardless of the values.
func ExampleCheck_configError() {
	_, err := scalar.Check(scalar.Args(1), scalar.Positional("integr"), scalar.DefaultOptions())

	fmt.Println(errors.Is(err, scalar.ErrConfig))
	fmt.Println(err)
	// Output:
	// true
	// Scalar Enforce Call-Error: Unrecognized Scalar Type 'integr'.
}
