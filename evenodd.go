// Package evenodd classifies numbers as even or odd under a configurable
// validation policy.
//
// Every call resolves its options, optionally coerces a numeric string,
// runs the input through four ordered gates (type, NaN, finite, integer) and
// then decides parity. A gate failure returns false, or an error when the
// matching ThrowOn option is set:
//
//	ok, err := evenodd.CheckEven("10", evenodd.AllowNumberStrings())
//	// ok == true, err == nil
//
//	_, err = evenodd.CheckOdd(3.14, evenodd.ThrowOnNonInteger())
//	// errors.Is(err, evenodd.ErrTypeClass) == true
package evenodd

import (
	"fmt"
	"log/slog"

	"github.com/ppiankov/evenodd/internal/coerce"
	"github.com/ppiankov/evenodd/internal/model"
	"github.com/ppiankov/evenodd/internal/parity"
	"github.com/ppiankov/evenodd/internal/validate"
)

// Options is the complete classification policy. The zero value is the default.
type Options = model.Options

// Option overrides part of Options. Options apply in order; later ones win.
type Option = model.Option

// ValidationError is returned when a gate fails and its ThrowOn flag is set.
type ValidationError = validate.ValidationError

// Kind selects the parity being asked about
type Kind = parity.Kind

const (
	Even = parity.Even
	Odd  = parity.Odd
)

// Path names the parity algorithm that produced an answer
type Path = parity.Path

const (
	PathPrimary  = parity.PathPrimary
	PathFallback = parity.PathFallback
)

// Gate identifies a validation gate
type Gate = validate.Gate

const (
	GateType    = validate.GateType
	GateNaN     = validate.GateNaN
	GateFinite  = validate.GateFinite
	GateInteger = validate.GateInteger
)

var (
	ErrNonNumber  = validate.ErrNonNumber
	ErrNonInteger = validate.ErrNonInteger
	ErrNonFinite  = validate.ErrNonFinite
	ErrNaN        = validate.ErrNaN

	ErrTypeClass  = validate.ErrTypeClass
	ErrRangeClass = validate.ErrRangeClass

	// ErrUnknownKind is returned by Classify for a Kind other than Even or Odd
	ErrUnknownKind = parity.ErrUnknownKind
)

// DefaultOptions returns the baseline policy
func DefaultOptions() Options { return model.DefaultOptions() }

// ResolveOptions merges opts over the defaults
func ResolveOptions(opts ...Option) Options { return model.Resolve(opts...) }

// WithOptions replaces the whole policy with o
func WithOptions(o Options) Option { return model.WithOptions(o) }

// ThrowOnNonNumber makes a type gate failure return ErrNonNumber
func ThrowOnNonNumber() Option { return model.WithThrowOnNonNumber(true) }

// ThrowOnNonInteger makes an integer gate failure return ErrNonInteger
func ThrowOnNonInteger() Option { return model.WithThrowOnNonInteger(true) }

// ThrowOnNonFinite makes a finite gate failure return ErrNonFinite
func ThrowOnNonFinite() Option { return model.WithThrowOnNonFinite(true) }

// ThrowOnNaN makes a NaN gate failure return ErrNaN
func ThrowOnNaN() Option { return model.WithThrowOnNaN(true) }

// AllowNumberStrings coerces numeric strings before validation
func AllowNumberStrings() Option { return model.WithAllowNumberStrings(true) }

// EnableDebug logs one "validating input" line per call
func EnableDebug() Option { return model.WithEnableDebug(true) }

// Result is the detailed outcome of a classification
type Result struct {
	Value  bool // The answer returned by CheckEven/CheckOdd
	Failed Gate // Gate that rejected the input, zero when admitted
	Path   Path // Algorithm that decided parity, empty when rejected
}

// Classifier holds the collaborators of a classification. It has no mutable
// state and is safe for concurrent use.
type Classifier struct {
	firewall *validate.Firewall
	engine   *parity.Engine
}

// ClassifierOption configures a Classifier
type ClassifierOption func(*classifierConfig)

type classifierConfig struct {
	logger   *slog.Logger
	maxDepth int
}

// WithLogger sets the sink for EnableDebug lines. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) ClassifierOption {
	return func(c *classifierConfig) { c.logger = logger }
}

// WithMaxDepth sets the recursion budget of the primary parity algorithm.
func WithMaxDepth(depth int) ClassifierOption {
	return func(c *classifierConfig) { c.maxDepth = depth }
}

// New creates a Classifier
func New(opts ...ClassifierOption) *Classifier {
	cfg := classifierConfig{maxDepth: parity.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Classifier{
		firewall: validate.NewFirewall(cfg.logger),
		engine:   parity.New(parity.WithMaxDepth(cfg.maxDepth)),
	}
}

// CheckEven reports whether input is an even integer.
func (c *Classifier) CheckEven(input any, opts ...Option) (bool, error) {
	r, err := c.Classify(input, Even, opts...)
	return r.Value, err
}

// CheckOdd reports whether input is an odd integer.
func (c *Classifier) CheckOdd(input any, opts ...Option) (bool, error) {
	r, err := c.Classify(input, Odd, opts...)
	return r.Value, err
}

// Classify answers whether input is of kind want and explains how.
// An unknown kind is an error, whatever the input.
func (c *Classifier) Classify(input any, want Kind, opts ...Option) (Result, error) {
	if !want.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownKind, want)
	}

	resolved := model.Resolve(opts...)

	if resolved.AllowNumberStrings {
		if s, ok := coerce.AsString(input); ok {
			if n, ok := coerce.FromString(s); ok {
				input = n
			}
		}
	}

	verdict, admitted, err := c.firewall.Check(input, resolved)
	if err != nil {
		return Result{Failed: verdict.Failed}, err
	}
	if !admitted {
		return Result{Failed: verdict.Failed}, nil
	}

	value, path := c.engine.Parity(verdict.Integer(), want)
	return Result{Value: value, Path: path}, nil
}

var std = New()

// CheckEven reports whether input is an even integer using the default Classifier.
func CheckEven(input any, opts ...Option) (bool, error) {
	return std.CheckEven(input, opts...)
}

// CheckOdd reports whether input is an odd integer using the default Classifier.
func CheckOdd(input any, opts ...Option) (bool, error) {
	return std.CheckOdd(input, opts...)
}
