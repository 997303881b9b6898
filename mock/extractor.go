package mock

import nav "github.com/BastouP/Nav"

var _ nav.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor is a mock implementation of nav.MetaExtractor.
type MetaExtractor struct {
	FieldFn func(html, field string) (string, bool)
	TitleFn func(html string) (string, bool)
}

func (e *MetaExtractor) Field(html, field string) (string, bool) {
	return e.FieldFn(html, field)
}

func (e *MetaExtractor) Title(html string) (string, bool) {
	return e.TitleFn(html)
}
