package scalar

import (
	"fmt"
	"strings"
)

// Kind is one of the recognized primitive validation kinds.
type Kind int

const (
	KindInvalid Kind = iota
	KindArray
	KindBool
	KindFloat
	KindInt
	KindNull
	KindObject
	KindString
	KindScalar
	KindNumeric
	KindCallable
	KindResource
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindArray:    "array",
	KindBool:     "bool",
	KindFloat:    "float",
	KindInt:      "int",
	KindNull:     "null",
	KindObject:   "object",
	KindString:   "string",
	KindScalar:   "scalar",
	KindNumeric:  "numeric",
	KindCallable: "callable",
	KindResource: "resource",
}

// tags maps every accepted (lowercase) tag, aliases included, to its kind.
var tags = map[string]Kind{
	"array":    KindArray,
	"bool":     KindBool,
	"boolean":  KindBool,
	"float":    KindFloat,
	"double":   KindFloat,
	"real":     KindFloat,
	"int":      KindInt,
	"integer":  KindInt,
	"unset":    KindNull,
	"null":     KindNull,
	"object":   KindObject,
	"string":   KindString,
	"scalar":   KindScalar,
	"numeric":  KindNumeric,
	"callable": KindCallable,
	"resource": KindResource,
}

// String returns the canonical tag of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a type tag, case-insensitively, to its Kind.
func ParseKind(tag string) (Kind, error) {
	if k, ok := tags[strings.ToLower(tag)]; ok {
		return k, nil
	}
	return KindInvalid, fmt.Errorf("unsupported type: %s", tag)
}

// Kinds returns every recognized kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindArray; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// Aliases returns the tags accepted for k, canonical tag first.
func (k Kind) Aliases() []string {
	out := []string{k.String()}
	for _, tag := range aliasOrder {
		if tags[tag] == k && tag != out[0] {
			out = append(out, tag)
		}
	}
	return out
}

var aliasOrder = []string{"boolean", "double", "real", "integer", "unset"}
