package coerce

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float32
type count uint16

func TestFromValue_Numeric(t *testing.T) {
	tests := []struct {
		name  string
		input any
		kind  Kind
		text  string
	}{
		{"int", 42, KindInt, "42"},
		{"int8", int8(-8), KindInt, "-8"},
		{"int64 max", int64(math.MaxInt64), KindInt, "9223372036854775807"},
		{"uint64 max", uint64(math.MaxUint64), KindUint, "18446744073709551615"},
		{"named uint", count(7), KindUint, "7"},
		{"float64", 3.5, KindFloat, "3.5"},
		{"named float", celsius(-2), KindFloat, "-2"},
		{"infinity", math.Inf(1), KindFloat, "+Inf"},
		{"nan", math.NaN(), KindFloat, "NaN"},
		{"already a number", Uint(9), KindUint, "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := FromValue(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.kind, n.Kind())
			assert.Equal(t, tt.text, n.String())
		})
	}
}

func TestFromValue_NonNumeric(t *testing.T) {
	for _, input := range []any{nil, "10", true, complex(1, 0), []int{1}, struct{}{}, json.Number("5")} {
		_, ok := FromValue(input)
		assert.False(t, ok, "%#v should not be numeric", input)
	}
}

func TestNumber_Predicates(t *testing.T) {
	assert.True(t, Float(math.NaN()).IsNaN())
	assert.False(t, Int(0).IsNaN())

	assert.True(t, Float(math.Inf(-1)).IsInf())
	assert.False(t, Float(math.MaxFloat64).IsInf())

	assert.True(t, Float(math.Copysign(0, -1)).IsInteger())
	assert.True(t, Float(1e300).IsInteger())
	assert.False(t, Float(3.14).IsInteger())
	assert.False(t, Float(math.Inf(1)).IsInteger())
	assert.True(t, Uint(3).IsInteger())
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		kind  Kind
		text  string
	}{
		{"10", true, KindInt, "10"},
		{"  -7\n", true, KindInt, "-7"},
		{"+12", true, KindInt, "12"},
		{"", true, KindInt, "0"},
		{"   ", true, KindInt, "0"},
		{"3.14", true, KindFloat, "3.14"},
		{".5", true, KindFloat, "0.5"},
		{"5.", true, KindFloat, "5"},
		{"1e3", true, KindFloat, "1000"},
		{"1e400", true, KindFloat, "+Inf"},
		{"99999999999999999999", true, KindFloat, "1e+20"},
		{"Infinity", true, KindFloat, "+Inf"},
		{"-Infinity", true, KindFloat, "-Inf"},
		{"0x1F", true, KindUint, "31"},
		{"0o17", true, KindUint, "15"},
		{"0b101", true, KindUint, "5"},
		{"\ufeff8", true, KindInt, "8"},

		{"invalid", false, 0, ""},
		{"NaN", false, 0, ""},
		{"inf", false, 0, ""},
		{"1_000", false, 0, ""},
		{"-0x10", false, 0, ""},
		{"0x1p3", false, 0, ""},
		{"12abc", false, 0, ""},
		{"1e", false, 0, ""},
		{".", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, ok := FromString(tt.input)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.kind, n.Kind())
			assert.Equal(t, tt.text, n.String())
		})
	}
}

func TestFromString_WideHexSaturatesToFloat(t *testing.T) {
	n, ok := FromString("0x10000000000000000")
	require.True(t, ok)
	assert.Equal(t, KindFloat, n.Kind())
	assert.Equal(t, math.Pow(2, 64), n.Float64())
}

func TestAsString(t *testing.T) {
	s, ok := AsString("42")
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	s, ok = AsString(json.Number("7"))
	assert.True(t, ok)
	assert.Equal(t, "7", s)

	_, ok = AsString(42)
	assert.False(t, ok)

	_, ok = AsString(nil)
	assert.False(t, ok)
}
