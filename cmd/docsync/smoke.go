package main

import (
	"fmt"

	"github.com/xsnow-dev/docsync"
	"github.com/xsnow-dev/docsync/notebook"
)

// Run executes the smoke command. Notebook execution itself belongs to
// the CI harness; this validates that each notebook parses and reports
// how many cells an execution run would cover.
func (c *SmokeCmd) Run(deps *Dependencies) error {
	for _, path := range c.Paths {
		nb, err := notebook.Read(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
			return err
		}

		sanitized, skipped := notebook.Sanitize(nb)
		fmt.Fprintf(deps.Stdout, "ok %s: %d code cells (%d install cells skipped)\n",
			path, sanitized.CodeCellCount(), skipped)
	}
	return nil
}
