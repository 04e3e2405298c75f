package validate

import (
	"log/slog"

	"github.com/ppiankov/evenodd/internal/coerce"
	"github.com/ppiankov/evenodd/internal/model"
	"github.com/ppiankov/evenodd/internal/parity"
)

// Gate identifies one admissibility check. Gates run in declaration order.
type Gate int

const (
	GateNone    Gate = iota // Passed every gate
	GateType                // Not a numeric value
	GateNaN                 // Not-a-Number
	GateFinite              // Positive or negative infinity
	GateInteger             // Has a fractional part
)

func (g Gate) String() string {
	switch g {
	case GateNone:
		return "none"
	case GateType:
		return "type"
	case GateNaN:
		return "nan"
	case GateFinite:
		return "finite"
	case GateInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of running the gates: either an admitted integer or
// the first gate that failed.
type Verdict struct {
	Number coerce.Number
	Failed Gate
}

// OK reports whether every gate passed
func (v Verdict) OK() bool { return v.Failed == GateNone }

// Integer returns the admitted value. Only meaningful when OK.
func (v Verdict) Integer() parity.Integer {
	n := v.Number
	switch n.Kind() {
	case coerce.KindInt:
		return parity.FromInt64(n.Int64())
	case coerce.KindUint:
		return parity.FromUint64(n.Uint64())
	default:
		return parity.FromFloat(n.Float64())
	}
}

// Inspect runs the type, NaN, finite and integer gates in that order and
// stops at the first failure. Infinities pass the type gate.
func Inspect(input any) Verdict {
	n, ok := coerce.FromValue(input)
	if !ok {
		return Verdict{Failed: GateType}
	}
	if n.IsNaN() {
		return Verdict{Number: n, Failed: GateNaN}
	}
	if n.IsInf() {
		return Verdict{Number: n, Failed: GateFinite}
	}
	if !n.IsInteger() {
		return Verdict{Number: n, Failed: GateInteger}
	}
	return Verdict{Number: n}
}

// throwFlag returns the option governing a gate
func throwFlag(g Gate, opts model.Options) bool {
	switch g {
	case GateType:
		return opts.ThrowOnNonNumber
	case GateNaN:
		return opts.ThrowOnNaN
	case GateFinite:
		return opts.ThrowOnNonFinite
	case GateInteger:
		return opts.ThrowOnNonInteger
	default:
		return false
	}
}

// Enforce applies the throw-or-suppress policy to a verdict. A failed gate
// whose flag is set yields a *ValidationError; otherwise it yields false.
func Enforce(v Verdict, opts model.Options) (bool, error) {
	if v.OK() {
		return true, nil
	}
	if throwFlag(v.Failed, opts) {
		return false, &ValidationError{Gate: v.Failed}
	}
	return false, nil
}

// Firewall is the validation front door used by the classifier
type Firewall struct {
	logger *slog.Logger
}

// NewFirewall creates a firewall that writes debug lines to logger.
// A nil logger means slog.Default at call time.
func NewFirewall(logger *slog.Logger) *Firewall {
	return &Firewall{logger: logger}
}

// Check inspects input and applies the policy in opts.
func (f *Firewall) Check(input any, opts model.Options) (Verdict, bool, error) {
	if opts.EnableDebug {
		f.log().Info("validating input", "input", input)
	}

	verdict := Inspect(input)
	admitted, err := Enforce(verdict, opts)
	return verdict, admitted, err
}

func (f *Firewall) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return slog.Default()
}
