package main

import (
	"context"
	"io"
	"time"

	"github.com/xsnow-dev/docsync/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Syncer   *crawl.Syncer
	Versions *crawl.VersionChecker

	// VersionOverride short-circuits the version command, letting CI
	// pin the reported version without a network call.
	VersionOverride string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `help:"Log fetch operations to stderr"`
	Timeout time.Duration `short:"t" default:"30s" help:"Network timeout per fetch"`

	Sync    SyncCmd    `cmd:"" help:"Synchronise tutorial assets from the documentation index"`
	Version VersionCmd `cmd:"" help:"Print the published documentation version"`
	Smoke   SmokeCmd   `cmd:"" help:"Validate synchronised notebooks and report cell counts"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	IndexURL    string `default:"https://xsnow.readthedocs.io/en/latest/tutorials/index.html" help:"Tutorial index URL"`
	LinkPattern string `default:"/tutorials/" help:"Substring that tutorial links must contain"`
	OutputDir   string `default:"notebooks" help:"Directory where tutorials are written"`
	Manifest    string `default:"_manifest.yml" help:"Manifest path to update"`
	DryRun      bool   `help:"Crawl and report without writing files"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct {
	URL string `default:"https://xsnow.readthedocs.io/en/latest/" help:"Documentation homepage to inspect"`
}

// SmokeCmd is the "smoke" subcommand.
type SmokeCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"Notebook files to validate"`
}
