package main

import (
	"fmt"

	"github.com/xsnow-dev/docsync"
	"github.com/xsnow-dev/docsync/crawl"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	summary, err := deps.Syncer.Sync(deps.Ctx, crawl.Options{
		IndexURL:     c.IndexURL,
		LinkPattern:  c.LinkPattern,
		OutputDir:    c.OutputDir,
		ManifestPath: c.Manifest,
		DryRun:       c.DryRun,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
