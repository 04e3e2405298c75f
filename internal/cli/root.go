package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/evenodd/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

const version = "evenodd v0.1.0"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "evenodd",
	Short: "evenodd - classify numbers as even or odd under a validation policy",
	Long: `evenodd decides whether numbers are even or odd.

Every value passes four gates before it is classified: it must be a number,
not NaN, finite and an integer. A value that fails a gate is reported as
false, or as an error when the matching --throw-on-* flag is set.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of evenodd.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.evenodd/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	setDefaults(model.DefaultConfig())

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// setDefaults registers every config key with viper so env vars and config
// files can override them
func setDefaults(cfg *model.Config) {
	viper.SetDefault("options.throw_on_non_number", cfg.Options.ThrowOnNonNumber)
	viper.SetDefault("options.throw_on_non_integer", cfg.Options.ThrowOnNonInteger)
	viper.SetDefault("options.throw_on_non_finite", cfg.Options.ThrowOnNonFinite)
	viper.SetDefault("options.throw_on_nan", cfg.Options.ThrowOnNaN)
	viper.SetDefault("options.allow_number_strings", cfg.Options.AllowNumberStrings)
	viper.SetDefault("options.enable_debug", cfg.Options.EnableDebug)
	viper.SetDefault("engine.max_depth", cfg.Engine.MaxDepth)
	viper.SetDefault("output.format", cfg.Output.Format)
	viper.SetDefault("output.color", cfg.Output.Color)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.ttl", cfg.Cache.TTL)
	viper.SetDefault("log.level", cfg.Log.Level)
	viper.SetDefault("log.format", cfg.Log.Format)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.evenodd")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match EVENODD_*
	viper.SetEnvPrefix("EVENODD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration from every viper source
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
