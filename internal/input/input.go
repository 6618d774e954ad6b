// Package input loads a complete input document into memory.
//
// Files whose names end in ".gz" or ".zst" are decompressed transparently.
// The name "-" denotes standard input, which is read as-is.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ReadFile reads the complete contents of the named file, decompressing it
// if its extension calls for that.
func ReadFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := Read(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}

// Read reads the complete contents of r, decompressing according to ext,
// which is a file extension including its leading period. Unrecognized
// extensions are read verbatim.
func Read(r io.Reader, ext string) ([]byte, error) {
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return io.ReadAll(r)
}
