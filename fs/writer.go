package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	nav "github.com/BastouP/Nav"
)

// MarshalIndex encodes records as an indented JSON array.
// Non-ASCII text and HTML special characters are written as is, and an
// empty index encodes as "[]". The output has no trailing newline.
func MarshalIndex(records []*nav.PageRecord) ([]byte, error) {
	if records == nil {
		records = []*nav.PageRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, nav.Errorf(nav.EINTERNAL, "failed to encode index: %v", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Ensure IndexWriter implements nav.IndexWriter at compile time.
var _ nav.IndexWriter = (*IndexWriter)(nil)

// IndexWriter writes the page index to a JSON file.
// The index is written to path.tmp, then renamed over path, so a failed
// write never leaves a truncated index behind.
type IndexWriter struct {
	path string
}

// NewIndexWriter creates a new IndexWriter targeting path.
func NewIndexWriter(path string) *IndexWriter {
	return &IndexWriter{path: path}
}

func (w *IndexWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteIndex replaces the index file with records.
func (w *IndexWriter) WriteIndex(ctx context.Context, records []*nav.PageRecord) error {
	data, err := MarshalIndex(records)
	if err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return nav.Errorf(nav.EWRITE, "cannot create directory for %q: %v", w.path, err)
	}

	if err := os.WriteFile(w.tempPath(), data, 0644); err != nil {
		_ = os.Remove(w.tempPath())
		return nav.Errorf(nav.EWRITE, "cannot write index %q: %v", w.path, err)
	}

	// Atomically rename temp to final
	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return nav.Errorf(nav.EWRITE, "cannot write index %q: %v", w.path, err)
	}

	return nil
}
