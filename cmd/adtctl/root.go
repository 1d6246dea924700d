package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/internal/config"
	"github.com/joshuapare/adtkit/internal/logger"
	"github.com/joshuapare/adtkit/internal/progress"
	"github.com/joshuapare/adtkit/pkg/adt"
	"github.com/joshuapare/adtkit/pkg/ast"
)

var (
	// Global flags
	configPath   string
	verbose      bool
	quiet        bool
	jsonOut      bool
	logLevel     string
	showProgress bool
	legacyHex    []string
	encoding     string
	permissive   bool

	// cfg is the loaded configuration with flag overrides applied.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "adtctl",
	Short: "Inspect ADT program dumps",
	Long: `adtctl parses ADT text, the constructor-application format binary
analysis tools use to dump lifted programs, and lets you render, browse,
count and search the result. Plain, gzip and zstd inputs are accepted.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $ADTCTL_CONFIG, ./adtctl.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&showProgress, "progress", false, "Log parse progress")
	rootCmd.PersistentFlags().
		StringSliceVar(&legacyHex, "legacy-hex", nil, "Tags whose bare integers are hexadecimal (repeatable)")
	rootCmd.PersistentFlags().StringVar(&encoding, "encoding", "", "Input text encoding (UTF-8, UTF-16LE, ...)")
	rootCmd.PersistentFlags().BoolVar(&permissive, "permissive", false, "Accept any constructor instead of the IR schema")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("permissive") && permissive {
		cfg.Parser.Schema = config.SchemaPermissive
		cfg.Parser.LegacyHexTags = nil
	}
	if flags.Changed("legacy-hex") {
		cfg.Parser.LegacyHexTags = legacyHex
	}
	if flags.Changed("encoding") {
		cfg.Parser.Encoding = encoding
	}
	if flags.Changed("progress") {
		cfg.Progress.Enabled = showProgress
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if verbose && !flags.Changed("log-level") {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return initLogging()
}

func initLogging() error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if quiet && level < slog.LevelError {
		level = slog.LevelError
	}
	return logger.Init(logger.Options{
		Enabled: true,
		Level:   level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Dir:     cfg.Log.Dir,
	})
}

// parseOptions builds the parse options from the configuration.
func parseOptions() (adt.Options, error) {
	limits, err := cfg.Limits()
	if err != nil {
		return adt.Options{}, err
	}
	opts := adt.Options{
		LegacyHexTags: cfg.Parser.LegacyHexTags,
		Encoding:      cfg.Parser.Encoding,
		Limits:        limits,
		DisableGC:     cfg.Parser.DisableGC,
		Logger:        logger.L,
	}
	if cfg.Progress.Enabled {
		opts.Progress = progress.LogReporter(logger.L)
		opts.ProgressInterval = cfg.Progress.Interval.Duration
	}
	return opts, nil
}

// loadInput parses path ("-" reads stdin) with the configured schema and
// returns the tree and the time the parse took.
func loadInput(path string, opts adt.Options) (ast.Value, time.Duration, error) {
	reg, _ := cfg.Registry()
	printVerbose("Parsing: %s\n", path)

	start := time.Now()
	var (
		v   ast.Value
		err error
	)
	if path == "-" {
		v, err = adt.ParseReader(os.Stdin, reg, opts)
	} else {
		v, err = adt.ParseFile(path, reg, opts)
	}
	if err != nil {
		return nil, 0, err
	}
	return v, time.Since(start), nil
}

// parseInput is loadInput with the configured options.
func parseInput(path string) (ast.Value, time.Duration, error) {
	opts, err := parseOptions()
	if err != nil {
		return nil, 0, err
	}
	return loadInput(path, opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
