package parity

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimary_BaseCases(t *testing.T) {
	e := New()

	tests := []struct {
		n    int64
		want Kind
		exp  bool
	}{
		{0, Even, true},
		{0, Odd, false},
		{1, Even, false},
		{1, Odd, true},
		{2, Even, true},
		{-1, Odd, true},
		{-2, Even, true},
		{9999, Odd, true},
	}

	for _, tt := range tests {
		got, err := e.Primary(FromInt64(tt.n), tt.want)
		require.NoError(t, err)
		assert.Equal(t, tt.exp, got, "%s(%d)", tt.want, tt.n)
	}
}

func TestPrimary_DepthBudget(t *testing.T) {
	e := New(WithMaxDepth(10))

	// A magnitude of m needs m-1 steps.
	_, err := e.Primary(FromUint64(11), Even)
	require.NoError(t, err)

	_, err = e.Primary(FromUint64(12), Even)
	assert.ErrorIs(t, err, ErrExhausted)

	_, err = e.Primary(FromUint64(12), Odd)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestPrimary_ZeroBudget(t *testing.T) {
	e := New(WithMaxDepth(-5))
	assert.Equal(t, 0, e.MaxDepth())

	got, err := e.Primary(FromUint64(1), Odd)
	require.NoError(t, err)
	assert.True(t, got)

	_, err = e.Primary(FromUint64(2), Even)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestPrimary_HugeMagnitudeExhaustsImmediately(t *testing.T) {
	_, err := New(WithMaxDepth(math.MaxInt)).Primary(FromFloat(1e300), Even)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestPrimary_LargeBudgetDoesNotGrowStack(t *testing.T) {
	e := New(WithMaxDepth(200_000_000))

	got, err := e.Primary(FromInt64(150_000_000), Even)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = e.Primary(FromInt64(-150_000_001), Odd)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestPrimary_UnknownKind(t *testing.T) {
	_, err := New().Primary(FromInt64(4), Kind(7))
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.False(t, Kind(7).Valid())

	// Both paths answer false, whatever the magnitude.
	got, _ := New().Parity(FromInt64(4), Kind(7))
	assert.False(t, got)
	got, _ = New(WithMaxDepth(0)).Parity(FromInt64(1_000_000), Kind(7))
	assert.False(t, got)
	assert.False(t, Fallback(FromInt64(4), Kind(7)))
}

func TestParity_FallsBackOnExhaustion(t *testing.T) {
	e := New(WithMaxDepth(100))

	got, path := e.Parity(FromInt64(50), Even)
	assert.True(t, got)
	assert.Equal(t, PathPrimary, path)

	got, path = e.Parity(FromInt64(1_000_001), Odd)
	assert.True(t, got)
	assert.Equal(t, PathFallback, path)

	got, path = e.Parity(FromInt64(math.MinInt64), Even)
	assert.True(t, got)
	assert.Equal(t, PathFallback, path)

	got, path = e.Parity(FromUint64(math.MaxUint64), Odd)
	assert.True(t, got)
	assert.Equal(t, PathFallback, path)
}

func TestFallback_DigitTable(t *testing.T) {
	for d := uint64(0); d < 10; d++ {
		n := FromUint64(120 + d)
		assert.Equal(t, d%2 == 0, Fallback(n, Even), "even(%d)", 120+d)
		assert.Equal(t, d%2 == 1, Fallback(n, Odd), "odd(%d)", 120+d)
	}
}

func TestFallback_UnknownDigit(t *testing.T) {
	for _, n := range []Integer{{digits: ""}, {digits: "1e+"}, {digits: "-"}} {
		assert.False(t, Fallback(n, Even))
		assert.False(t, Fallback(n, Odd))
	}
}

func TestFromInt64_Magnitude(t *testing.T) {
	mag, exact := FromInt64(math.MinInt64).Magnitude()
	assert.True(t, exact)
	assert.Equal(t, uint64(1)<<63, mag)
	assert.Equal(t, "9223372036854775808", FromInt64(math.MinInt64).Digits())

	mag, _ = FromInt64(-42).Magnitude()
	assert.Equal(t, uint64(42), mag)
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, "0", FromFloat(math.Copysign(0, -1)).Digits())
	assert.Equal(t, "4096", FromFloat(-4096).Digits())

	// Above 2^53 every float is even and the exact rendering says so.
	assert.Equal(t, "9007199254740994", FromFloat(9007199254740994).Digits())

	huge := FromFloat(-1e21)
	_, exact := huge.Magnitude()
	assert.False(t, exact)
	assert.Equal(t, "1000000000000000000000", huge.Digits())
}

func TestPrimaryAndFallbackAgree(t *testing.T) {
	e := New()

	for m := uint64(0); m <= 2000; m++ {
		n := FromUint64(m)
		for _, k := range []Kind{Even, Odd} {
			primary, err := e.Primary(n, k)
			require.NoError(t, err)
			require.Equal(t, primary, Fallback(n, k), "%s(%d)", k, m)
		}
	}

	deep := New(WithMaxDepth(1 << 16))
	agree := func(x int16) bool {
		n := FromInt64(int64(x))
		even, err := deep.Primary(n, Even)
		if err != nil {
			return false
		}
		return even == Fallback(n, Even)
	}
	require.NoError(t, quick.Check(agree, nil))
}

func TestEvenOddComplement(t *testing.T) {
	e := New()
	complement := func(x int64) bool {
		n := FromInt64(x)
		even, _ := e.Parity(n, Even)
		odd, _ := e.Parity(n, Odd)
		return even != odd
	}
	require.NoError(t, quick.Check(complement, nil))
}

func TestSignIndependence(t *testing.T) {
	e := New()
	symmetric := func(x int32) bool {
		pos, _ := e.Parity(FromInt64(int64(x)), Even)
		neg, _ := e.Parity(FromInt64(-int64(x)), Even)
		return pos == neg
	}
	require.NoError(t, quick.Check(symmetric, nil))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("odd")
	require.NoError(t, err)
	assert.Equal(t, Odd, k)
	assert.Equal(t, "even", Even.String())

	_, err = ParseKind("prime")
	assert.Error(t, err)
}
