package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps command flags to viper keys. Several commands define the
// same flags, so binding happens when a command runs rather than in init.
var flagKeys = map[string]string{
	"throw-on-non-number":  "options.throw_on_non_number",
	"throw-on-non-integer": "options.throw_on_non_integer",
	"throw-on-non-finite":  "options.throw_on_non_finite",
	"throw-on-nan":         "options.throw_on_nan",
	"allow-number-strings": "options.allow_number_strings",
	"debug":                "options.enable_debug",
	"max-depth":            "engine.max_depth",
	"output":               "output.format",
	"color":                "output.color",
	"cache-ttl":            "cache.ttl",
}

// addPolicyFlags defines the classification flags shared by even, odd and batch
func addPolicyFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	// Validation policy
	f.Bool("throw-on-non-number", false, "fail instead of printing false when a value is not a number")
	f.Bool("throw-on-non-integer", false, "fail instead of printing false when a value has a fractional part")
	f.Bool("throw-on-non-finite", false, "fail instead of printing false when a value is infinite")
	f.Bool("throw-on-nan", false, "fail instead of printing false when a value is NaN")
	f.Bool("allow-number-strings", false, "coerce numeric strings to numbers before validation")
	f.Bool("debug", false, "log one diagnostic line per value")
	f.Bool("raw", false, "pass values as strings instead of parsing them as numbers")

	// Engine and output
	f.Int("max-depth", 0, "recursion budget of the primary parity algorithm (default from config)")
	f.StringP("output", "o", "text", "output format (text, json, yaml)")
	f.Bool("color", true, "colorize text output")
}

// bindFlags binds the flags of the running command to viper
func bindFlags(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
