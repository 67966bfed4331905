package scalar

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// numericString matches decimal numeric strings with optional surrounding
// whitespace, sign, fraction and exponent. Hex, "inf" and "nan" are not numeric.
var numericString = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?[ \t\n\r\v\f]*$`)

const whitespace = " \t\n\r\v\f"

// parseNumeric returns the numeric value of s if s is a numeric string.
func parseNumeric(s string) (float64, bool) {
	if !numericString.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Trim(s, whitespace), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// Out of range parses to ±Inf, which is still numeric.
	return f, true
}

// wholeInt reports whether f equals its truncation to int64, i.e. whether
// f == (float)(int)f holds.
func wholeInt(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return false
	}
	return f == float64(int64(f))
}

// looseEqualsInt reports whether v loosely equals its integer coercion.
//
// Integers always do. Booleans compare as booleans with the coerced 0/1 and
// therefore always do. Floats and numeric strings do when whole-valued.
// Everything else, nil included, does not.
func looseEqualsInt(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Bool:
		return true
	case reflect.Float32, reflect.Float64:
		return wholeInt(rv.Float())
	case reflect.String:
		f, ok := parseNumeric(rv.String())
		return ok && wholeInt(f)
	default:
		return false
	}
}

// looseEqualsFloat reports whether v loosely equals its float coercion.
func looseEqualsFloat(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Bool:
		return true
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(rv.Float())
	case reflect.String:
		_, ok := parseNumeric(rv.String())
		return ok
	default:
		return false
	}
}
