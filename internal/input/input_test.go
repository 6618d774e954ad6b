package input_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jvalid/internal/input"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const testDoc = `{"name": "bob", "tags": [1, 2, true, null]}`

func gzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("Write gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close gzip: %v", err)
	}
	return buf.Bytes()
}

func zstded(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("New zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("Write zstd: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close zstd: %v", err)
	}
	return buf.Bytes()
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data []byte
	}{
		{"plain.json", []byte(testDoc)},
		{"packed.json.gz", gzipped(t, testDoc)},
		{"packed.json.zst", zstded(t, testDoc)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, tc.data, 0600); err != nil {
				t.Fatalf("Write test file: %v", err)
			}
			got, err := input.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: unexpected error: %v", err)
			}
			if diff := cmp.Diff(testDoc, string(got)); diff != "" {
				t.Errorf("ReadFile %q (-want, +got):\n%s", tc.name, diff)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := input.ReadFile(filepath.Join(t.TempDir(), "nonesuch.json")); err == nil {
		t.Error("ReadFile of a missing file: got nil, want error")
	}
	if _, err := input.Read(bytes.NewReader([]byte("not compressed")), ".gz"); err == nil {
		t.Error("Read of corrupt gzip: got nil, want error")
	}
}
