package adt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime/debug"
	"time"

	"github.com/joshuapare/adtkit/internal/adttext"
	"github.com/joshuapare/adtkit/internal/mmfile"
	"github.com/joshuapare/adtkit/internal/progress"
	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/types"
)

// Parse parses one ADT document from data. Applications are built with
// reg; a nil registry accepts every tag (ast.Permissive). Gzip and zstd
// input is decompressed first and text in other encodings is decoded per
// opts.Encoding.
//
// Errors are *types.Error values; use errors.Is with the types sentinels
// (types.ErrInput, types.ErrUndefined, types.ErrArity, types.ErrLimit) to
// classify them.
//
// Example:
//
//	v, err := adt.Parse(data, bir.Schema(), adt.Options{
//	    LegacyHexTags: bir.LegacyHexTags,
//	})
func Parse(data []byte, reg ast.Registry, opts Options) (ast.Value, error) {
	log := opts.logger()
	if reg == nil {
		reg = ast.Permissive()
	}

	raw, err := inflate(data, opts.Limits.MaxInputSize)
	if err != nil {
		return nil, err
	}
	if c := DetectCompression(data); c != CompressionNone {
		log.Debug("decompressed input", "format", c.String(), "compressed", len(data), "bytes", len(raw))
	}
	text, err := adttext.Decode(raw, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cfg := adttext.Config{
		LegacyHexTags: opts.LegacyHexTags,
		Limits:        opts.Limits,
	}
	if opts.Progress != nil {
		cfg.Progress = progress.NewTracker(int64(len(text)), opts.ProgressInterval, opts.Progress)
	}
	if opts.DisableGC {
		defer suspendGC()()
	}

	start := time.Now()
	v, err := adttext.Parse(text, reg, cfg)
	if err != nil {
		log.Debug("parse failed", "bytes", len(text), "error", err)
		return nil, err
	}
	log.Debug("parsed", "bytes", len(text), "elapsed", time.Since(start))
	return v, nil
}

// ParseString parses one ADT document from s.
func ParseString(s string, reg ast.Registry, opts Options) (ast.Value, error) {
	return Parse([]byte(s), reg, opts)
}

// ParseReader reads r to the end and parses the result. The whole input
// is buffered before parsing starts.
func ParseReader(r io.Reader, reg ast.Registry, opts Options) (ast.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(data, reg, opts)
}

// ParseFile memory-maps the file at path and parses it. The returned tree
// does not reference the mapping, which is released before ParseFile
// returns.
//
// Example:
//
//	v, err := adt.ParseFile("prog.adt.zst", bir.Schema(), adt.DefaultOptions())
func ParseFile(path string, reg ast.Registry, opts Options) (ast.Value, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &types.Error{
				Kind:   types.ErrKindNotFound,
				Msg:    "input file not found: " + path,
				Offset: types.NoOffset,
				Err:    err,
			}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer release()

	if err := mmfile.PreFault(data); err != nil {
		return nil, &types.Error{
			Kind:   types.ErrKindFault,
			Msg:    "input file is not readable: " + path,
			Offset: types.NoOffset,
			Err:    err,
		}
	}

	// A file truncated under the mapping faults on access; turn that into
	// a panic the parser recovers as an ErrKindFault.
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)

	opts.Logger = opts.logger().With("file", path)
	v, err := Parse(data, reg, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
