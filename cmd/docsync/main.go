package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/xsnow-dev/docsync"
	"github.com/xsnow-dev/docsync/crawl"
	"github.com/xsnow-dev/docsync/fs"
	"github.com/xsnow-dev/docsync/goquery"
	dochttp "github.com/xsnow-dev/docsync/http"
	docslog "github.com/xsnow-dev/docsync/slog"
)

// requestsPerSecond paces fetches against the documentation host.
// Fetches stay strictly sequential; this only spaces them out.
const requestsPerSecond = 2.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:             ctx,
		Stdout:          stdout,
		Stderr:          stderr,
		VersionOverride: os.Getenv("XSNOW_DOCS_VERSION"),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsync"),
		kong.Description("Synchronise tutorial assets from the public xsnow documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsync --help' to see available commands")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var fetcher docsync.Fetcher = dochttp.NewFetcher(
		dochttp.WithTimeout(cli.Timeout),
		dochttp.WithRequestsPerSecond(requestsPerSecond),
	)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	}

	deps.Syncer = &crawl.Syncer{
		Fetcher:  fetcher,
		Links:    goquery.NewIndexExtractor(),
		Pages:    goquery.NewPageExtractor(),
		Writer:   fs.NewWriter(),
		Manifest: fs.NewManifestStore(),
	}
	deps.Versions = &crawl.VersionChecker{Fetcher: fetcher}

	return kongCtx.Run(deps)
}
