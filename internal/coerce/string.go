package coerce

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalInteger  = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalLiteral  = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	prefixedLiteral = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// FromString converts a numeric string into a Number.
//
// Surrounding whitespace is ignored and the empty string is zero.
// "Infinity" with an optional sign, unsigned 0x/0o/0b integers and decimal
// literals with optional fraction and exponent are accepted. Decimal
// integers that fit in an int64 stay exact. Anything else reports false.
func FromString(s string) (Number, bool) {
	s = strings.TrimFunc(s, isSpace)

	switch s {
	case "":
		return Int(0), true
	case "Infinity", "+Infinity":
		return Float(math.Inf(1)), true
	case "-Infinity":
		return Float(math.Inf(-1)), true
	}

	if prefixedLiteral.MatchString(s) {
		return parsePrefixed(s)
	}

	if decimalInteger.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), true
		}
	}

	if !decimalLiteral.MatchString(s) {
		return Number{}, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, false
	}
	// Out-of-range literals saturate to ±Inf, which ParseFloat already returns.
	return Float(f), true
}

func parsePrefixed(s string) (Number, bool) {
	base := 16
	switch s[1] {
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	}
	digits := s[2:]

	if u, err := strconv.ParseUint(digits, base, 64); err == nil {
		return Uint(u), true
	}

	wide, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Number{}, false
	}
	f, _ := new(big.Float).SetInt(wide).Float64()
	return Float(f), true
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
