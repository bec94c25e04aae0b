package main

import (
	"fmt"

	"github.com/xsnow-dev/docsync"
)

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	if deps.VersionOverride != "" {
		fmt.Fprintln(deps.Stdout, deps.VersionOverride)
		return nil
	}

	result, err := deps.Versions.Check(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Version)
	return nil
}
