package validate

import "errors"

// Class sentinels. A ValidationError matches exactly one of them with errors.Is.
var (
	ErrTypeClass  = errors.New("type error")
	ErrRangeClass = errors.New("range error")
)

const messagePrefix = "[ENTERPRISE NUMBER CLASSIFICATION SDK]: "

// ValidationError reports the gate an input failed when that gate's throw
// flag is set.
type ValidationError struct {
	Gate Gate
}

// Gate sentinels for errors.Is
var (
	ErrNonNumber  = &ValidationError{Gate: GateType}
	ErrNaN        = &ValidationError{Gate: GateNaN}
	ErrNonFinite  = &ValidationError{Gate: GateFinite}
	ErrNonInteger = &ValidationError{Gate: GateInteger}
)

func (e *ValidationError) Error() string {
	switch e.Gate {
	case GateType:
		return messagePrefix + "Given parameter was not a number, and option to throw when given parameter is not a number is enabled."
	case GateNaN:
		return messagePrefix + "Given parameter was NaN, and option to throw when given parameter is NaN is enabled."
	case GateFinite:
		return messagePrefix + "Given parameter was not finite, and option to throw when given parameter is not finite is enabled."
	case GateInteger:
		return messagePrefix + "Given parameter was not an integer, and option to throw when given parameter is not an integer is enabled."
	default:
		return messagePrefix + "Given parameter failed validation."
	}
}

// Class returns ErrTypeClass or ErrRangeClass
func (e *ValidationError) Class() error {
	switch e.Gate {
	case GateNaN, GateFinite:
		return ErrRangeClass
	default:
		return ErrTypeClass
	}
}

// Is matches the class sentinel and any ValidationError for the same gate.
func (e *ValidationError) Is(target error) bool {
	if target == e.Class() {
		return true
	}
	var other *ValidationError
	if errors.As(target, &other) {
		return other.Gate == e.Gate
	}
	return false
}
