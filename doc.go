/*
Package scalarguard checks loosely typed parameter values against a declared
map of primitive type tags.

The library lives in [github.com/aretw0/scalarguard/pkg/scalar]. This root
package only carries the module version; the scalarguard command in
cmd/scalarguard wraps the library with a file checker and an HTTP server.

# Concept

A type spec maps parameter keys (positional indexes or names) to type tags
such as "int", "float", "string", "bool", "array", "object", "numeric",
"scalar", "null", "callable" or "resource". A nil tag leaves the key
unchecked. Options choose how absent values and loose numbers are treated and
whether failures are returned or only logged.

# Usage

	v := scalar.New()
	ok, err := v.Validate(
		scalar.NamedParams(map[string]any{"id": 7, "name": "ada"}),
		scalar.SpecFromMap(map[string]any{"id": "int", "name": "string"}),
		&scalar.Overrides{Site: scalar.Here()},
	)

Documents combining "types", "values" and "options" can be checked from the
command line:

	scalarguard check request.yaml
	scalarguard check --soft-numeric --format markdown *.json
*/
package scalarguard
