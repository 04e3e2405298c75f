package parity

// lastDigitKind maps a decimal digit to its parity.
var lastDigitKind = [10]Kind{
	0: Even,
	1: Odd,
	2: Even,
	3: Odd,
	4: Even,
	5: Odd,
	6: Even,
	7: Odd,
	8: Even,
	9: Odd,
}

// classifyDigit returns the parity of a digit character. ok is false for
// anything that is not 0-9.
func classifyDigit(c byte) (k Kind, ok bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return lastDigitKind[c-'0'], true
}

// Fallback decides parity from the least-significant decimal digit of n.
// It never fails; an unrecognised digit answers false for both kinds.
func Fallback(n Integer, want Kind) bool {
	digits := n.Digits()
	if digits == "" {
		return false
	}
	got, ok := classifyDigit(digits[len(digits)-1])
	if !ok {
		return false
	}
	return got == want
}
