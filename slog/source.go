// Package slog provides log/slog decorators for nav services.
package slog

import (
	"context"
	"log/slog"
	"time"

	nav "github.com/BastouP/Nav"
)

// Ensure LoggingSource implements nav.DocumentSource.
var _ nav.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with debug logging.
type LoggingSource struct {
	next   nav.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next nav.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// List delegates to the wrapped source and logs the number of documents.
func (s *LoggingSource) List(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list documents",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx)
}

// Read delegates to the wrapped source and logs the document size.
func (s *LoggingSource) Read(ctx context.Context, name string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read document",
			"name", name,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, name)
}
