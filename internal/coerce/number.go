// Package coerce normalises caller input into a numeric value the firewall
// can inspect.
package coerce

import (
	"math"
	"reflect"
	"strconv"
)

// Kind is the storage class of a Number
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindUint
)

// Number is a numeric input. Integer kinds are kept exact; everything else
// is an IEEE-754 double.
type Number struct {
	kind Kind
	f    float64
	i    int64
	u    uint64
}

// Float wraps a float64
func Float(f float64) Number { return Number{kind: KindFloat, f: f} }

// Int wraps an int64
func Int(i int64) Number { return Number{kind: KindInt, i: i} }

// Uint wraps a uint64
func Uint(u uint64) Number { return Number{kind: KindUint, u: u} }

// Kind reports the storage class
func (n Number) Kind() Kind { return n.kind }

// Float64 returns the float value. Only meaningful for KindFloat.
func (n Number) Float64() float64 { return n.f }

// Int64 returns the signed value. Only meaningful for KindInt.
func (n Number) Int64() int64 { return n.i }

// Uint64 returns the unsigned value. Only meaningful for KindUint.
func (n Number) Uint64() uint64 { return n.u }

// IsNaN reports whether n is the Not-a-Number sentinel
func (n Number) IsNaN() bool {
	return n.kind == KindFloat && math.IsNaN(n.f)
}

// IsInf reports whether n is positive or negative infinity
func (n Number) IsInf() bool {
	return n.kind == KindFloat && math.IsInf(n.f, 0)
}

// IsInteger reports whether n has no fractional part. Negative zero counts.
func (n Number) IsInteger() bool {
	if n.kind != KindFloat {
		return true
	}
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
		return false
	}
	return math.Trunc(n.f) == n.f
}

func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return strconv.FormatInt(n.i, 10)
	case KindUint:
		return strconv.FormatUint(n.u, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

// FromValue returns the Number held by v when v is a genuine numeric value:
// any signed or unsigned integer, float32 or float64, including named types.
// Infinities and NaN are numeric. Bools, complex numbers, strings and nil are not.
func FromValue(v any) (Number, bool) {
	switch x := v.(type) {
	case Number:
		return x, true
	case int:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case float64:
		return Float(x), true
	}

	if v == nil {
		return Number{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), true
	default:
		return Number{}, false
	}
}

// AsString returns the text of v when v is string-shaped: a string or any
// named type whose underlying kind is string.
func AsString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
