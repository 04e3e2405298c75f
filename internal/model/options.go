package model

// Options controls how strictly an input is validated before classification.
// The zero value is the default configuration: every gate suppresses its
// failure and numeric strings are rejected.
type Options struct {
	ThrowOnNonNumber   bool `json:"throw_on_non_number" yaml:"throw_on_non_number" mapstructure:"throw_on_non_number"`    // Return an error instead of false on type gate failure
	ThrowOnNonInteger  bool `json:"throw_on_non_integer" yaml:"throw_on_non_integer" mapstructure:"throw_on_non_integer"` // Return an error instead of false on integer gate failure
	ThrowOnNonFinite   bool `json:"throw_on_non_finite" yaml:"throw_on_non_finite" mapstructure:"throw_on_non_finite"`    // Return an error instead of false on finite gate failure
	ThrowOnNaN         bool `json:"throw_on_nan" yaml:"throw_on_nan" mapstructure:"throw_on_nan"`                         // Return an error instead of false on NaN gate failure
	AllowNumberStrings bool `json:"allow_number_strings" yaml:"allow_number_strings" mapstructure:"allow_number_strings"` // Coerce string inputs to numbers before validation
	EnableDebug        bool `json:"enable_debug" yaml:"enable_debug" mapstructure:"enable_debug"`                         // Emit one diagnostic line per call
}

// defaultOptions is never handed out by reference.
var defaultOptions = Options{}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return defaultOptions
}

// Option overrides one or more fields of Options.
type Option func(*Options)

// Resolve applies opts in order on top of DefaultOptions. Later options win.
func Resolve(opts ...Option) Options {
	resolved := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}

// WithOptions replaces the whole record.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithThrowOnNonNumber sets ThrowOnNonNumber
func WithThrowOnNonNumber(v bool) Option {
	return func(o *Options) { o.ThrowOnNonNumber = v }
}

// WithThrowOnNonInteger sets ThrowOnNonInteger
func WithThrowOnNonInteger(v bool) Option {
	return func(o *Options) { o.ThrowOnNonInteger = v }
}

// WithThrowOnNonFinite sets ThrowOnNonFinite
func WithThrowOnNonFinite(v bool) Option {
	return func(o *Options) { o.ThrowOnNonFinite = v }
}

// WithThrowOnNaN sets ThrowOnNaN
func WithThrowOnNaN(v bool) Option {
	return func(o *Options) { o.ThrowOnNaN = v }
}

// WithAllowNumberStrings sets AllowNumberStrings
func WithAllowNumberStrings(v bool) Option {
	return func(o *Options) { o.AllowNumberStrings = v }
}

// WithEnableDebug sets EnableDebug
func WithEnableDebug(v bool) Option {
	return func(o *Options) { o.EnableDebug = v }
}
