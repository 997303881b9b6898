package mock

import (
	"context"

	nav "github.com/BastouP/Nav"
)

var _ nav.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of nav.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, records []*nav.PageRecord) error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, records []*nav.PageRecord) error {
	return w.WriteIndexFn(ctx, records)
}
