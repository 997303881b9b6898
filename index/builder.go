// Package index builds the page index of a site.
// It enumerates the site's documents, reads each one, and turns its
// metadata into a nav.PageRecord, in document name order.
package index

import (
	"context"

	nav "github.com/BastouP/Nav"
)

// Builder assembles page records from a document source.
type Builder struct {
	Source    nav.DocumentSource
	Extractor nav.MetaExtractor

	// URLPrefix is joined with each filename to form the record URL.
	URLPrefix string

	// Lenient skips documents that cannot be read or decoded instead of
	// aborting the build. Listing failures always abort.
	Lenient bool
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Name      string
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressIndexed ProgressType = iota
	ProgressSkipped
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build returns one record per document, ordered by document name.
// The progress callback, if provided, receives one event per document.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) ([]*nav.PageRecord, error) {
	names, err := b.Source.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*nav.PageRecord, 0, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := b.Source.Read(ctx, name)
		if err != nil {
			if !b.Lenient || !skippable(err) {
				return nil, err
			}
			report(progress, ProgressEvent{
				Type:      ProgressSkipped,
				Name:      name,
				Completed: i + 1,
				Total:     len(names),
				Error:     err,
			})
			continue
		}

		records = append(records, nav.BuildRecord(b.Extractor, b.URLPrefix, name, html))
		report(progress, ProgressEvent{
			Type:      ProgressIndexed,
			Name:      name,
			Completed: i + 1,
			Total:     len(names),
		})
	}

	return records, nil
}

// skippable reports whether a per-document error may be skipped in
// lenient mode.
func skippable(err error) bool {
	switch nav.ErrorCode(err) {
	case nav.EFILESYSTEM, nav.EDECODE:
		return true
	}
	return false
}

func report(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
