package parity

import (
	"math"
	"strconv"
)

// Integer is a validated whole number reduced to its magnitude.
type Integer struct {
	mag    uint64
	exact  bool   // mag holds the full magnitude
	digits string // decimal rendering of the magnitude, always exact
}

// FromInt64 builds an Integer from a signed value
func FromInt64(i int64) Integer {
	var mag uint64
	if i < 0 {
		mag = uint64(-(i + 1)) + 1
	} else {
		mag = uint64(i)
	}
	return FromUint64(mag)
}

// FromUint64 builds an Integer from an unsigned value
func FromUint64(u uint64) Integer {
	return Integer{mag: u, exact: true, digits: strconv.FormatUint(u, 10)}
}

// two64 is the first float64 magnitude that no longer fits in a uint64
const two64 = 1 << 64

// FromFloat builds an Integer from an integer-valued, finite float.
func FromFloat(f float64) Integer {
	m := math.Abs(f)
	if m < two64 {
		return FromUint64(uint64(m))
	}
	// Precision 0 makes FormatFloat print the exact binary value.
	return Integer{digits: strconv.FormatFloat(m, 'f', 0, 64)}
}

// Digits returns the decimal digits of the magnitude
func (n Integer) Digits() string { return n.digits }

// Magnitude returns the magnitude and whether it fit in a uint64
func (n Integer) Magnitude() (uint64, bool) { return n.mag, n.exact }
