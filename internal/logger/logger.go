// Package logger holds the process-wide structured logger of adtctl.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards all output until Init
// enables it.
var L = slog.New(slog.DiscardHandler)

var closer io.Closer

const (
	logPrefix     = "adtctl-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum level
	Format  string     // "text" (default) or "json"

	// Output selection, first match wins: Writer, File, Dir, stderr.
	Writer io.Writer
	File   string // Append to this file
	Dir    string // Daily files adtctl-YYYY-MM-DD.log, pruned after 30 days
}

// Init configures logging. Call from main before any log calls; calling it
// again replaces the previous configuration and closes its file.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nil
	}

	w, err := output(opts)
	if err != nil {
		return err
	}

	hopts := &slog.HandlerOptions{Level: opts.Level}
	switch strings.ToLower(opts.Format) {
	case "", "text":
		L = slog.New(slog.NewTextHandler(w, hopts))
	case "json":
		L = slog.New(slog.NewJSONHandler(w, hopts))
	default:
		Close()
		return fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}
	return nil
}

func output(opts Options) (io.Writer, error) {
	switch {
	case opts.Writer != nil:
		return opts.Writer, nil
	case opts.File != "":
		return openLog(opts.File)
	case opts.Dir != "":
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, err
		}
		// Best-effort; a stale log is not worth failing over.
		cleanOldLogs(opts.Dir, time.Now())
		return openLog(filepath.Join(opts.Dir, logPrefix+time.Now().Format(time.DateOnly)+logSuffix))
	}
	return os.Stderr, nil
}

func openLog(path string) (io.Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	closer = f
	return f, nil
}

// Close releases the log file opened by Init, if any, and resets L to
// discard.
func Close() {
	if closer == nil {
		return
	}
	closer.Close()
	closer = nil
	L = slog.New(slog.DiscardHandler)
}

// ParseLevel converts "debug", "info", "warn" or "error" (any case) to a
// level. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// cleanOldLogs removes daily log files older than retentionDays.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		// adtctl-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
