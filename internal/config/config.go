package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SLS_MIN_SIZE.
const EnvPrefix = "SLS"

// Config represents the listing configuration after flags, environment
// and an optional config file have been merged.
type Config struct {
	// Filters. Size strings use KB/MB/GB suffixes, Modified is
	// YYYY-MM-DD..YYYY-MM-DD and a negative Depth is unlimited.
	Ext      string `mapstructure:"ext"`
	MinSize  string `mapstructure:"min-size"`
	MaxSize  string `mapstructure:"max-size"`
	Hidden   bool   `mapstructure:"hidden"`
	Modified string `mapstructure:"modified"`
	Include  string `mapstructure:"include"`
	Exclude  string `mapstructure:"exclude"`
	Depth    int    `mapstructure:"depth"`

	// Output
	JSON        bool   `mapstructure:"json"`
	Human       bool   `mapstructure:"human"`
	Color       string `mapstructure:"color"` // auto, always, never
	Interactive bool   `mapstructure:"interactive"`

	Verbose bool `mapstructure:"verbose"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// RegisterFlags declares every configurable flag on fs. Flag names are
// the viper keys.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("ext", "", "Only list entries with this extension (case-sensitive, no dot)")
	fs.String("min-size", "", "Minimum file size (example: 10KB, 1MB)")
	fs.String("max-size", "", "Maximum file size")
	fs.Bool("hidden", false, "Include hidden files")
	fs.String("modified", "", "Modified date range (example: 2025-01-01..2025-08-10)")
	fs.String("include", "", "Only list names matching this glob (example: \"*.rs\")")
	fs.String("exclude", "", "Skip names matching this glob (example: \"*test*\")")
	fs.Int("depth", -1, "Max depth for recursion (negative = unlimited)")

	fs.Bool("json", false, "Output JSON instead")
	fs.BoolP("human", "H", false, "Show sizes as KB/MB/GB")
	fs.String("color", ColorAuto, "Color output: auto, always, never")
	fs.BoolP("interactive", "i", false, "Browse results interactively")
	fs.BoolP("verbose", "v", false, "Enable verbose logging")
}

// Load merges configuration sources. Precedence, highest first: flags set
// on the command line, SLS_* environment variables, configFile (any
// format viper understands), built-in defaults.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("depth", -1)
	v.SetDefault("color", ColorAuto)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects option combinations that cannot be honoured.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (expected auto|always|never)", c.Color)
	}
	if c.JSON && c.Interactive {
		return fmt.Errorf("--json and --interactive cannot be combined")
	}
	return nil
}
