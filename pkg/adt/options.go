package adt

import (
	"log/slog"
	"time"

	"github.com/joshuapare/adtkit/internal/progress"
	"github.com/joshuapare/adtkit/pkg/ast"
)

// Report is one progress observation, delivered to Options.Progress.
type Report = progress.Report

// Limits bounds a parse (re-exported for convenience).
type Limits = ast.Limits

// Options controls a parse. The zero value parses UTF-8 text with no
// limits, no legacy hexadecimal tags and no reporting.
type Options struct {
	// LegacyHexTags lists applications whose bare integer arguments are
	// hexadecimal, e.g. bir.LegacyHexTags.
	LegacyHexTags []string

	// Encoding names the text encoding when the input carries no byte
	// order mark: "UTF-8" (default), "UTF-16LE", "UTF-16BE", "ISO-8859-1"
	// or "WINDOWS-1252".
	Encoding string

	// Limits bounds the document. MaxInputSize applies to the text after
	// decompression and decoding.
	Limits Limits

	// DisableGC suspends the garbage collector for the duration of the
	// parse and forces a collection afterwards. Building a large tree
	// allocates heavily but frees almost nothing, so collections during
	// the parse are mostly wasted work.
	DisableGC bool

	// Progress, if set, receives a report every ProgressInterval
	// (default 5s) and a final one when the parse completes.
	Progress         func(Report)
	ProgressInterval time.Duration

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the command line tool when
// nothing is configured: default limits and no reporting.
func DefaultOptions() Options {
	return Options{Limits: ast.DefaultLimits()}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
