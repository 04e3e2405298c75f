// Package parity decides whether a validated integer is even or odd.
//
// The primary algorithm is the mutual recursion
//
//	even(0) = true,  even(1) = false, even(m) = odd(m-1)
//	odd(0)  = false, odd(1)  = true,  odd(m)  = even(m-1)
//
// bounded by an explicit depth budget. The recursion is unrolled into a loop
// that alternates between the two functions, so the budget alone decides when
// it stops and goroutine stack size never does. When the budget runs out the
// engine answers from the last decimal digit instead. Both paths agree on
// every integer the primary path can finish.
package parity

import (
	"errors"
	"fmt"
)

// Kind selects the question being asked
type Kind int

const (
	Even Kind = iota
	Odd
)

func (k Kind) String() string {
	switch k {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is Even or Odd
func (k Kind) Valid() bool { return k == Even || k == Odd }

// ParseKind parses "even" or "odd"
func ParseKind(s string) (Kind, error) {
	switch s {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	default:
		return 0, fmt.Errorf("unknown parity kind %q (want even or odd)", s)
	}
}

// Path records which algorithm produced an answer
type Path string

const (
	PathPrimary  Path = "primary"
	PathFallback Path = "fallback"
)

var (
	// ErrExhausted is returned by Primary when the depth budget runs out
	ErrExhausted = errors.New("parity: recursion budget exhausted")

	// ErrUnknownKind is returned for a Kind other than Even or Odd
	ErrUnknownKind = errors.New("parity: unknown kind")
)

// DefaultMaxDepth matches the call depth a typical interpreter stack allows.
const DefaultMaxDepth = 10000

// Engine runs the primary algorithm and falls back on exhaustion.
// An Engine holds no mutable state and is safe to share.
type Engine struct {
	maxDepth int
}

// Option configures an Engine
type Option func(*Engine)

// WithMaxDepth sets the recursion budget. Values below zero are treated as zero.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth < 0 {
			depth = 0
		}
		e.maxDepth = depth
	}
}

// New creates an engine
func New(opts ...Option) *Engine {
	e := &Engine{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxDepth returns the recursion budget
func (e *Engine) MaxDepth() int { return e.maxDepth }

// Parity answers whether n is of kind want, and which path answered.
// An unknown kind is false on both paths.
func (e *Engine) Parity(n Integer, want Kind) (bool, Path) {
	result, err := e.Primary(n, want)
	switch {
	case err == nil:
		return result, PathPrimary
	case errors.Is(err, ErrUnknownKind):
		return false, PathPrimary
	}
	return Fallback(n, want), PathFallback
}

// Primary runs the mutual recursion. It fails with ErrExhausted when the
// magnitude needs more than MaxDepth steps or does not fit in a uint64.
func (e *Engine) Primary(n Integer, want Kind) (bool, error) {
	if !want.Valid() {
		return false, fmt.Errorf("%w: %v", ErrUnknownKind, want)
	}
	mag, exact := n.Magnitude()
	if !exact {
		return false, ErrExhausted
	}

	// Each iteration is one call of even(m) or odd(m); asking odd(m) is
	// asking even(m-1), so only the question flips as m shrinks.
	asking := want
	for depth := 0; ; depth++ {
		switch mag {
		case 0:
			return asking == Even, nil
		case 1:
			return asking == Odd, nil
		}
		if depth >= e.maxDepth {
			return false, ErrExhausted
		}
		mag--
		asking = asking.flip()
	}
}

func (k Kind) flip() Kind {
	if k == Even {
		return Odd
	}
	return Even
}
