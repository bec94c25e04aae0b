// Package crawl orchestrates tutorial synchronisation: it discovers
// tutorial links on an index page, downloads linked notebooks or scrapes
// code blocks, persists the assets and the manifest, and produces a
// human-readable diff summary.
package crawl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xsnow-dev/docsync"
)

// placeholderScript is written when a scraped tutorial page contains no
// code blocks at all.
const placeholderScript = "# No code blocks were detected in the source documentation."

// Syncer sequences the synchronisation of tutorial assets.
// All work is strictly sequential; per-link failures are isolated and
// logged into the summary instead of aborting the run.
type Syncer struct {
	Fetcher  docsync.Fetcher
	Links    docsync.LinkExtractor
	Pages    docsync.PageExtractor
	Writer   docsync.FileWriter
	Manifest docsync.ManifestStore
}

// Options configures a single sync run. Default URLs live with the CLI,
// not here, so tests can substitute them freely.
type Options struct {
	IndexURL     string
	LinkPattern  string
	OutputDir    string
	ManifestPath string
	DryRun       bool
}

// Sync crawls the tutorial index and synchronises every discovered
// tutorial. It returns the diff summary, followed by any change or
// failure log lines. An unreachable index page is fatal; individual
// tutorial failures are logged and skipped.
func (s *Syncer) Sync(ctx context.Context, opts Options) (string, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", err
	}

	previous, err := s.Manifest.Load(opts.ManifestPath)
	if err != nil {
		return "", err
	}

	indexHTML, err := s.Fetcher.Fetch(ctx, opts.IndexURL)
	if err != nil {
		return "", docsync.Errorf(docsync.EUNAVAILABLE, "unable to download tutorial index: %v", err)
	}

	links, err := s.Links.ExtractLinks(string(indexHTML), opts.IndexURL, opts.LinkPattern)
	if err != nil {
		return "", err
	}

	var records []docsync.Record
	var logs []string
	for _, link := range links {
		html, err := s.Fetcher.Fetch(ctx, link)
		if err != nil {
			logs = append(logs, fmt.Sprintf("failed to fetch %s: %v", link, err))
			continue
		}

		page, err := s.Pages.ExtractPage(string(html), link)
		if err != nil {
			logs = append(logs, fmt.Sprintf("failed to parse %s: %v", link, err))
			continue
		}

		asset, changes, err := s.buildAsset(ctx, page, link, opts.OutputDir)
		if err != nil {
			logs = append(logs, fmt.Sprintf("failed to sync %s: %v", link, err))
			continue
		}

		records = append(records, asset.Record())
		logs = append(logs, changes...)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Slug < records[j].Slug })

	summary := Summarize(previous, records)

	if opts.DryRun {
		for _, log := range logs {
			summary += "\nDRY-RUN: " + log
		}
		return summary, nil
	}

	wrote, err := s.Manifest.Dump(opts.ManifestPath, records)
	if err != nil {
		return "", err
	}
	if wrote && strings.HasPrefix(summary, "No ") {
		summary = "Manifest updated but no semantic changes detected."
	}

	if len(logs) > 0 {
		summary += "\n" + strings.Join(logs, "\n")
	}
	return summary, nil
}

// buildAsset persists a single tutorial. Pages with a notebook download
// link get the first notebook's bytes verbatim; otherwise the code
// blocks are joined into a script. Only the single computed path for
// this asset is touched, and only when its content actually changed.
func (s *Syncer) buildAsset(ctx context.Context, page *docsync.TutorialPage, pageURL, outputDir string) (*docsync.Asset, []string, error) {
	slug := docsync.SlugFromURL(pageURL)
	title := page.Title
	if title == "" {
		title = docsync.TitleFromSlug(slug)
	}

	var changes []string
	var assetPath, sourceType string

	if len(page.NotebookLinks) > 0 {
		data, err := s.Fetcher.Fetch(ctx, page.NotebookLinks[0])
		if err != nil {
			return nil, nil, err
		}
		assetPath = filepath.Join(outputDir, slug+".ipynb")
		wrote, err := s.Writer.WriteIfChanged(assetPath, data)
		if err != nil {
			return nil, nil, err
		}
		if wrote {
			changes = append(changes, "updated notebook "+assetPath)
		}
		sourceType = docsync.SourceTypeNotebook
	} else {
		code := strings.TrimSpace(strings.Join(page.CodeBlocks, "\n\n"))
		if code == "" {
			code = placeholderScript
		}
		assetPath = filepath.Join(outputDir, slug+".py")
		wrote, err := s.Writer.WriteIfChanged(assetPath, []byte(code+"\n"))
		if err != nil {
			return nil, nil, err
		}
		if wrote {
			changes = append(changes, "updated script "+assetPath)
		}
		sourceType = docsync.SourceTypeScraped
	}

	asset := &docsync.Asset{
		Slug:       slug,
		Title:      title,
		SourceURL:  pageURL,
		Path:       assetPath,
		SourceType: sourceType,
	}
	return asset, changes, nil
}
