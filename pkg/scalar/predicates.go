package scalar

import (
	"fmt"
	"io"
	"reflect"
)

// Satisfies reports whether v is an instance of kind k.
// soft enables loose numeric matching for KindInt and KindFloat.
func (k Kind) Satisfies(v any, soft bool) bool {
	switch k {
	case KindArray:
		return isArray(v)
	case KindBool:
		return kindOf(v) == reflect.Bool
	case KindFloat:
		if isFloat(v) {
			return true
		}
		return soft && looseEqualsFloat(v)
	case KindInt:
		if isInt(v) {
			return true
		}
		return soft && looseEqualsInt(v)
	case KindNull:
		return isNull(v)
	case KindObject:
		return isObject(v)
	case KindString:
		return kindOf(v) == reflect.String
	case KindScalar:
		switch kindOf(v) {
		case reflect.Bool, reflect.String:
			return true
		}
		return isInt(v) || isFloat(v)
	case KindNumeric:
		if isInt(v) || isFloat(v) {
			return true
		}
		if kindOf(v) == reflect.String {
			_, ok := parseNumeric(reflect.ValueOf(v).String())
			return ok
		}
		return false
	case KindCallable:
		rv := reflect.ValueOf(v)
		return rv.Kind() == reflect.Func && !rv.IsNil()
	case KindResource:
		if isNull(v) {
			return false
		}
		_, ok := v.(io.Closer)
		return ok
	default:
		return false
	}
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func isInt(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v any) bool {
	switch kindOf(v) {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isArray(v any) bool {
	switch kindOf(v) {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func isObject(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	}
	return false
}

// typeName describes the runtime type of v for diagnostics.
func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
