package main

import (
	"fmt"

	"github.com/BastouP/Nav/index"
)

// IndexCmd builds the page index and writes it to Output.
type IndexCmd struct {
	Output string
}

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	progress := func(e index.ProgressEvent) {
		if e.Type == index.ProgressSkipped {
			deps.Logger.Warn("skip document", "name", e.Name, "err", e.Error)
			return
		}
		deps.Logger.Debug("indexed document",
			"name", e.Name,
			"completed", e.Completed,
			"total", e.Total,
		)
	}

	records, err := deps.Builder.Build(deps.Ctx, progress)
	if err != nil {
		return err
	}

	if err := deps.Writer.WriteIndex(deps.Ctx, records); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d pages to %s\n", len(records), c.Output)
	return nil
}
