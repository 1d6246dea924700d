// Package config loads the adtctl configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/adtkit/internal/progress"
	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/bir"
	"github.com/joshuapare/adtkit/pkg/printer"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "ADTCTL_CONFIG"

// Schema names accepted by [parser] schema.
const (
	SchemaBIR        = "bir"
	SchemaPermissive = "permissive"
)

// Config holds the complete adtctl configuration
type Config struct {
	Parser   ParserConfig   `toml:"parser"`
	Progress ProgressConfig `toml:"progress"`
	Log      LogConfig      `toml:"log"`
	Output   OutputConfig   `toml:"output"`
}

// ParserConfig holds parse settings
type ParserConfig struct {
	Schema        string   `toml:"schema"`
	LegacyHexTags []string `toml:"legacy_hex_tags"`
	Encoding      string   `toml:"encoding"`
	DisableGC     bool     `toml:"disable_gc"`
	Limits        string   `toml:"limits"`    // preset: default, relaxed, strict
	MaxDepth      int      `toml:"max_depth"` // overrides the preset when set
}

// ProgressConfig holds progress reporting settings
type ProgressConfig struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
	Dir    string `toml:"dir"` // daily files when File is empty, pruned after 30 days
}

// OutputConfig holds printer settings
type OutputConfig struct {
	Format         string `toml:"format"`
	Indent         int    `toml:"indent"`
	MaxDepth       int    `toml:"max_depth"`
	MaxStringBytes int    `toml:"max_string_bytes"`
	Compact        bool   `toml:"compact"`
	TrailingComma  bool   `toml:"trailing_comma"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file. Keys the file sets that no
// setting uses are reported as an error, so typos do not pass silently.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)
	cfg.Log.Dir = os.ExpandEnv(cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by ADTCTL_CONFIG, else the first of
// ./adtctl.toml and ~/.config/adtctl/config.toml that exists. Without any
// file it returns Default.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func defaultPaths() []string {
	paths := []string{"./adtctl.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "adtctl", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Parser
	if c.Parser.Schema == "" {
		c.Parser.Schema = SchemaBIR
	}
	if c.Parser.LegacyHexTags == nil && c.Parser.Schema == SchemaBIR {
		c.Parser.LegacyHexTags = append([]string(nil), bir.LegacyHexTags...)
	}
	if c.Parser.Limits == "" {
		c.Parser.Limits = "default"
	}

	// Progress
	if c.Progress.Interval.Duration == 0 {
		c.Progress.Interval.Duration = progress.DefaultInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = string(printer.FormatText)
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = printer.DefaultIndentSize
	}
	if c.Output.MaxStringBytes == 0 {
		c.Output.MaxStringBytes = printer.DefaultMaxStringBytes
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Parser.Schema {
	case SchemaBIR, SchemaPermissive:
	default:
		return fmt.Errorf("parser.schema must be %q or %q, got %q", SchemaBIR, SchemaPermissive, c.Parser.Schema)
	}
	if _, err := ast.LimitsByName(c.Parser.Limits); err != nil {
		return fmt.Errorf("parser.limits: %w", err)
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative")
	}
	if _, err := printer.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

// Limits resolves the limits preset and the max_depth override.
func (c *Config) Limits() (ast.Limits, error) {
	lim, err := ast.LimitsByName(c.Parser.Limits)
	if err != nil {
		return ast.Limits{}, err
	}
	if c.Parser.MaxDepth > 0 {
		lim.MaxDepth = c.Parser.MaxDepth
	}
	return lim, nil
}

// Registry returns the constructor registry and class hierarchy named by
// parser.schema.
func (c *Config) Registry() (ast.Registry, ast.Hierarchy) {
	if c.Parser.Schema == SchemaPermissive {
		return ast.Permissive(), ast.Flat()
	}
	s := bir.Schema()
	return s, s
}
