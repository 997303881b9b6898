// Package regexp extracts page metadata with text patterns.
//
// Matching is deliberately shallow: the first tag that fits wins, tag and
// attribute names match case-insensitively, attribute values may use single
// or double quotes, and HTML entities are returned undecoded.
package regexp

import (
	"regexp"
	"strings"
	"sync"

	nav "github.com/BastouP/Nav"
)

// Ensure Extractor implements nav.MetaExtractor at compile time.
var _ nav.MetaExtractor = (*Extractor)(nil)

var titleRe = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

// Extractor implements nav.MetaExtractor with regular expressions.
// The zero value is ready to use and safe for concurrent use.
type Extractor struct {
	mu     sync.Mutex
	fields map[string]*regexp.Regexp
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Field returns the content of the first <meta name="field" content="...">
// tag. The name attribute must come first and the content value cannot
// contain a quote character.
func (e *Extractor) Field(html, field string) (string, bool) {
	m := e.fieldRe(field).FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	return value, value != ""
}

// Title returns the text between the first <title> and </title> pair.
func (e *Extractor) Title(html string) (string, bool) {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func (e *Extractor) fieldRe(field string) *regexp.Regexp {
	e.mu.Lock()
	defer e.mu.Unlock()

	if re, ok := e.fields[field]; ok {
		return re
	}
	if e.fields == nil {
		e.fields = make(map[string]*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)<meta\s+name=["']` + regexp.QuoteMeta(field) + `["']\s+content=["']([^"']+)["']`)
	e.fields[field] = re
	return re
}
