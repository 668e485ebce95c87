// Package source materializes table input into the contiguous byte buffer
// the tokenizer consumes.
//
// The tokenizer is deliberately ignorant of where bytes come from: it wants
// the whole input in memory with a single trailing newline. This package
// supplies that contract for readers and for files, decompressing
// transparently by file extension (gzip, bzip2, zstd and xz) and memory
// mapping plain files on platforms that support it.
package source

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Slurp reads r to the end and returns the bytes.
func Slurp(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read failed: %w", err)
	}
	return data, nil
}

// SlurpFile returns the contents of the named file and a cleanup function
// that must be called once the bytes are no longer needed.
//
// Files ending in .gz, .bz2, .zst or .xz are decompressed into a fresh
// buffer. Plain files are memory-mapped where the platform allows, falling
// back to a straight read; the cleanup function unmaps in that case, so the
// returned bytes must not be used after calling it.
func SlurpFile(path string) ([]byte, func(), error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".bz2", ".zst", ".xz":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("source: %w", err)
		}
		defer f.Close()

		r, done, err := decompressedReader(f, ext)
		if err != nil {
			return nil, nil, fmt.Errorf("source: open %s stream: %w", ext, err)
		}
		defer done()

		data, err := Slurp(r)
		if err != nil {
			return nil, nil, err
		}
		return data, func() {}, nil
	}

	if data, cleanup, err := mmapFile(path); err == nil {
		return data, cleanup, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("source: %w", err)
	}
	return data, func() {}, nil
}

// decompressedReader wraps r in the decompressor matching the extension.
func decompressedReader(r io.Reader, ext string) (io.Reader, func(), error) {
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { zr.Close() }, nil
	case ".bz2":
		return bzip2.NewReader(r), func() {}, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, func() { dec.Close() }, nil
	case ".xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return xr, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unsupported extension %q", ext)
}

// EnsureNewline returns data guaranteed to end with a single newline. When
// the input already complies it is returned as is; otherwise a copy with the
// newline appended is returned, leaving the caller's buffer untouched.
func EnsureNewline(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\n' {
		return data
	}
	buf := make([]byte, len(data)+1)
	copy(buf, data)
	buf[len(data)] = '\n'
	return buf
}
