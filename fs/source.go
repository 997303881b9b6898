// Package fs provides file-based access to site documents and the page index.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	nav "github.com/BastouP/Nav"
)

// DocumentExt is the suffix that marks a file as an HTML document.
// Matching is case-sensitive.
const DocumentExt = ".html"

// Ensure DirSource implements nav.DocumentSource at compile time.
var _ nav.DocumentSource = (*DirSource)(nil)

// DirSource implements nav.DocumentSource over a single directory.
// Subdirectories are not scanned.
type DirSource struct {
	dir string
}

// NewDirSource creates a new DirSource reading documents from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// List returns the names of the HTML documents in the directory, sorted
// ascending by byte order.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, nav.Errorf(nav.EFILESYSTEM, "cannot read directory %q: %v", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), DocumentExt) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Read returns the text of the named document with line endings
// normalized to "\n".
func (s *DirSource) Read(ctx context.Context, name string) (string, error) {
	if name != filepath.Base(name) {
		return "", nav.Errorf(nav.EFILESYSTEM, "invalid document name %q", name)
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nav.Errorf(nav.EFILESYSTEM, "cannot read document %q: %v", path, err)
	}
	if !utf8.Valid(data) {
		return "", nav.Errorf(nav.EDECODE, "document %q is not valid UTF-8", path)
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
