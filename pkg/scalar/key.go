package scalar

import (
	"fmt"
	"strconv"
)

// Key addresses a parameter either by name or by position.
type Key struct {
	name       string
	index      int
	positional bool
}

// Name returns a key addressing a named parameter.
func Name(name string) Key { return Key{name: name} }

// Index returns a key addressing a positional parameter.
func Index(i int) Key { return Key{index: i, positional: true} }

// Positional reports whether the key is an index.
func (k Key) Positional() bool { return k.positional }

// String renders the key the way diagnostics print it: indexes bare, names quoted.
func (k Key) String() string {
	if k.positional {
		return strconv.Itoa(k.index)
	}
	return fmt.Sprintf("'%s'", k.name)
}

// Label is the unquoted form, used for log attributes and JSON output.
func (k Key) Label() string {
	if k.positional {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// Params is the set of provided argument values.
// A key that is missing is absent; a key mapped to nil is present-with-null.
type Params map[Key]any

// NamedParams builds Params from a name-keyed map.
func NamedParams(m map[string]any) Params {
	p := make(Params, len(m))
	for name, v := range m {
		p[Name(name)] = v
	}
	return p
}

// Args builds Params from positional arguments, the way a function sees its own argument list.
func Args(values ...any) Params {
	p := make(Params, len(values))
	for i, v := range values {
		p[Index(i)] = v
	}
	return p
}

// Lookup returns the value for k and whether it is present.
func (p Params) Lookup(k Key) (any, bool) {
	v, ok := p[k]
	return v, ok
}
