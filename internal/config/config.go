// Package config loads CLI settings from an optional YAML file, the
// environment (TAPEMACHINE_*) and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// NoBudgetOverride leaves the step budget to the description.
const NoBudgetOverride = -1

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TAPEMACHINE"

// Config holds the effective CLI settings.
type Config struct {
	Format      string `mapstructure:"format" yaml:"format"`
	Budget      int    `mapstructure:"budget" yaml:"budget"`
	StopOnError bool   `mapstructure:"stop_on_error" yaml:"stop_on_error"`
	Trace       bool   `mapstructure:"trace" yaml:"trace"`
	Verbose     bool   `mapstructure:"verbose" yaml:"verbose"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("format", "text")
	v.SetDefault("budget", NoBudgetOverride)
	v.SetDefault("stop_on_error", false)
	v.SetDefault("trace", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile, or .tapemachine.yaml from the home directory when
// cfgFile is empty, and returns the merged configuration. A missing default
// config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".tapemachine")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the format name and budget.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "text", "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid format %q: want text, json or yaml", c.Format)
	}
	if c.Budget < NoBudgetOverride {
		return fmt.Errorf("invalid budget %d: must be non-negative", c.Budget)
	}
	return nil
}

// HasBudget reports whether the step budget is overridden.
func (c Config) HasBudget() bool {
	return c.Budget != NoBudgetOverride
}
