package coerce

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ParseLiteral turns command-line text into the value a Go caller would
// have passed: an int64 or uint64 for decimal integers, a float64 for
// anything ParseFloat understands (including NaN and Inf), and the
// trimmed string otherwise. Blank text and digit separators ("1_000") stay
// strings.
func ParseLiteral(s string) any {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	if f, err := cast.ToFloat64E(s); err == nil {
		return f
	}
	return s
}
