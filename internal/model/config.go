package model

import (
	"time"

	"github.com/ppiankov/evenodd/internal/parity"
)

// Config is the complete CLI configuration
type Config struct {
	Options Options      `json:"options" yaml:"options" mapstructure:"options"`
	Engine  EngineConfig `json:"engine" yaml:"engine" mapstructure:"engine"`
	Output  OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
	Cache   CacheConfig  `json:"cache" yaml:"cache" mapstructure:"cache"`
	Log     LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// EngineConfig tunes the parity engine
type EngineConfig struct {
	MaxDepth int `json:"max_depth" yaml:"max_depth" mapstructure:"max_depth"` // Recursion budget of the primary algorithm
}

// OutputConfig controls how verdicts are rendered
type OutputConfig struct {
	Format string `json:"format" yaml:"format" mapstructure:"format"` // text, json, yaml
	Color  bool   `json:"color" yaml:"color" mapstructure:"color"`
}

// CacheConfig controls verdict memoisation in batch runs
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`    // debug, info, warn, error
	Format string `json:"format" yaml:"format" mapstructure:"format"` // text, json
}

// DefaultMaxDepth is the recursion budget used when none is configured.
const DefaultMaxDepth = parity.DefaultMaxDepth

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Options: DefaultOptions(),
		Engine: EngineConfig{
			MaxDepth: DefaultMaxDepth,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
