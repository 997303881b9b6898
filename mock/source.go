package mock

import (
	"context"

	nav "github.com/BastouP/Nav"
)

var _ nav.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of nav.DocumentSource.
type DocumentSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, name string) (string, error)
}

func (s *DocumentSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *DocumentSource) Read(ctx context.Context, name string) (string, error) {
	return s.ReadFn(ctx, name)
}
