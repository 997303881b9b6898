package nav

import "context"

// PageRecord describes one indexed HTML document.
// Field order is the key order of the serialized index.
type PageRecord struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Display  string `json:"display"`
	Keywords string `json:"keywords"`
	Desc     string `json:"desc"`
}

// DocumentSource enumerates and reads the documents of a site.
type DocumentSource interface {
	// List returns the names of all HTML documents, sorted ascending.
	// Returns EFILESYSTEM if the source cannot be read.
	List(ctx context.Context) ([]string, error)

	// Read returns the full text of the named document.
	// Returns EFILESYSTEM if the document cannot be read and EDECODE if
	// its bytes are not valid UTF-8.
	Read(ctx context.Context, name string) (string, error)
}

// IndexWriter persists a complete index.
// Implementations must not leave a partial index behind on failure.
type IndexWriter interface {
	// WriteIndex replaces the index with records, in order.
	// Returns EWRITE if the index cannot be written.
	WriteIndex(ctx context.Context, records []*PageRecord) error
}
