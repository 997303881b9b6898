package nav

import "strings"

// BuildRecord assembles the index entry for one document. The URL is
// urlPrefix joined with filename; missing metadata resolves to the documented
// fallbacks rather than an error.
func BuildRecord(ex MetaExtractor, urlPrefix, filename, html string) *PageRecord {
	title, ok := ex.Title(html)
	if !ok {
		title = filename
	}

	declared, _ := ex.Field(html, FieldDisplay)
	keywords, _ := ex.Field(html, FieldKeywords)
	desc, _ := ExtractDescription(ex, html)

	return &PageRecord{
		URL:      PageURL(urlPrefix, filename),
		Title:    title,
		Display:  DeriveDisplay(filename, declared),
		Keywords: keywords,
		Desc:     desc,
	}
}

// PageURL joins the site-relative prefix and a document's filename.
func PageURL(urlPrefix, filename string) string {
	urlPrefix = strings.TrimRight(urlPrefix, "/")
	if urlPrefix == "" {
		return filename
	}
	return urlPrefix + "/" + filename
}
