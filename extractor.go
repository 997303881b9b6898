package nav

// Meta field names read from <meta name="..." content="..."> tags.
const (
	FieldKeywords    = "keywords"
	FieldDescription = "description"
	FieldDesc        = "desc"
	FieldDisplay     = "display"
)

// MetaExtractor reads page metadata out of raw HTML text.
// Implementations never fail: missing or malformed metadata is reported
// as absent.
type MetaExtractor interface {
	// Field returns the trimmed content of the first meta tag whose name
	// matches field case-insensitively. Reports false when no such tag
	// exists or its content is blank.
	Field(html, field string) (string, bool)

	// Title returns the trimmed inner text of the first title element.
	// Reports false when the document has no title element.
	Title(html string) (string, bool)
}

// ExtractDescription returns the "description" meta field, falling back to
// the shorter "desc" name.
func ExtractDescription(ex MetaExtractor, html string) (string, bool) {
	if desc, ok := ex.Field(html, FieldDescription); ok {
		return desc, true
	}
	return ex.Field(html, FieldDesc)
}
