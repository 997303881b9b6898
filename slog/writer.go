package slog

import (
	"context"
	"log/slog"
	"time"

	nav "github.com/BastouP/Nav"
)

// Ensure LoggingIndexWriter implements nav.IndexWriter.
var _ nav.IndexWriter = (*LoggingIndexWriter)(nil)

// LoggingIndexWriter wraps an IndexWriter with logging.
type LoggingIndexWriter struct {
	next   nav.IndexWriter
	logger *slog.Logger
}

// NewLoggingIndexWriter creates a new LoggingIndexWriter.
func NewLoggingIndexWriter(next nav.IndexWriter, logger *slog.Logger) *LoggingIndexWriter {
	return &LoggingIndexWriter{next: next, logger: logger}
}

// WriteIndex delegates to the wrapped writer and logs the operation.
func (w *LoggingIndexWriter) WriteIndex(ctx context.Context, records []*nav.PageRecord) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write index",
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteIndex(ctx, records)
}
