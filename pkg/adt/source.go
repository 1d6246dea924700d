package adt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/types"
)

// Compression identifies a compressed input container.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	}
	return "none"
}

// DetectCompression inspects the leading magic bytes of data. Neither
// magic is a valid prefix of ADT text, so plain input is never mistaken
// for a container.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	}
	return CompressionNone
}

// inflate returns data unchanged when it is not compressed. Otherwise it
// decompresses it, refusing to produce more than maxSize bytes when maxSize
// is positive.
func inflate(data []byte, maxSize int64) ([]byte, error) {
	c := DetectCompression(data)
	var (
		out []byte
		err error
	)
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		out, err = gunzip(data, maxSize)
	case CompressionZstd:
		out, err = unzstd(data, maxSize)
	}
	if err != nil {
		if _, ok := types.KindOf(err); ok {
			return nil, err
		}
		return nil, &types.Error{
			Kind:   types.ErrKindInput,
			Msg:    "corrupt " + c.String() + " input",
			Offset: types.NoOffset,
			Err:    err,
		}
	}
	return out, nil
}

func gunzip(data []byte, maxSize int64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var r io.Reader = zr
	if maxSize > 0 {
		r = io.LimitReader(zr, maxSize+1)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && int64(len(out)) > maxSize {
		return nil, inflatedTooLarge(maxSize)
	}
	return out, nil
}

func unzstd(data []byte, maxSize int64) ([]byte, error) {
	opts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
	if maxSize > 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(uint64(maxSize)))
	}
	dec, err := zstd.NewReader(nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return nil, inflatedTooLarge(maxSize)
	}
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && int64(len(out)) > maxSize {
		return nil, inflatedTooLarge(maxSize)
	}
	return out, nil
}

func inflatedTooLarge(maxSize int64) error {
	return ast.LimitViolation(&ast.ValidationError{
		Limit:   "MaxInputSize",
		Current: maxSize + 1,
		Maximum: maxSize,
	})
}
