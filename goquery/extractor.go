// Package goquery extracts page metadata from a parsed HTML document.
package goquery

import (
	"strings"
	"sync"

	nav "github.com/BastouP/Nav"
	"github.com/PuerkitoBio/goquery"
)

// Ensure Extractor implements nav.MetaExtractor at compile time.
var _ nav.MetaExtractor = (*Extractor)(nil)

// Extractor implements nav.MetaExtractor on top of goquery.
//
// Unlike the pattern extractor it accepts attributes in any order and
// decodes HTML entities in titles and attribute values.
//
// The last parsed document is kept so the several lookups made for one
// page parse it once. Extractor is safe for concurrent use.
type Extractor struct {
	mu   sync.Mutex
	html string
	doc  *goquery.Document
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Field returns the content attribute of the first meta tag whose name
// attribute equals field, ignoring case. Tags with a missing or empty
// content attribute are passed over; whitespace-only content ends the
// search with no value.
func (e *Extractor) Field(html, field string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, err := e.document(html)
	if err != nil {
		return "", false
	}

	var value string
	var found bool
	doc.Find("meta[name]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name, _ := sel.Attr("name")
		if !strings.EqualFold(strings.TrimSpace(name), field) {
			return true
		}
		content, ok := sel.Attr("content")
		if !ok || content == "" {
			return true
		}
		value = strings.TrimSpace(content)
		found = value != ""
		return false
	})
	return value, found
}

// Title returns the text of the first title element.
func (e *Extractor) Title(html string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, err := e.document(html)
	if err != nil {
		return "", false
	}

	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

// document returns the parsed form of html, reusing the previous parse when
// html is unchanged. Callers must hold e.mu.
func (e *Extractor) document(html string) (*goquery.Document, error) {
	if e.doc != nil && e.html == html {
		return e.doc, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nav.Errorf(nav.EINVALID, "failed to parse HTML: %v", err)
	}
	e.html, e.doc = html, doc
	return doc, nil
}
