package docsync

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source types for synchronised tutorial assets.
const (
	// SourceTypeNotebook marks an asset downloaded verbatim from a
	// linked Jupyter notebook.
	SourceTypeNotebook = "notebook"

	// SourceTypeScraped marks a script synthesised from code blocks
	// found in the tutorial HTML.
	SourceTypeScraped = "scraped"
)

// Asset represents a single synchronised tutorial artefact for the
// current run. It is not persisted directly; its field values become a
// manifest Record.
type Asset struct {
	Slug       string
	Title      string
	SourceURL  string
	Path       string
	SourceType string
}

// Record converts the asset to its persisted manifest form.
func (a *Asset) Record() Record {
	return Record{
		Slug:       a.Slug,
		Title:      a.Title,
		SourceURL:  a.SourceURL,
		Asset:      a.Path,
		SourceType: a.SourceType,
	}
}

// SlugFromURL derives a stable identifier from the last non-empty path
// segment of a tutorial URL. A trailing ".html" suffix is stripped.
// URLs with no usable path segment yield "tutorial".
func SlugFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "tutorial"
	}

	path := strings.TrimRight(u.Path, "/")
	slug := path[strings.LastIndex(path, "/")+1:]
	if slug == "" {
		return "tutorial"
	}

	return strings.TrimSuffix(slug, ".html")
}

// TitleFromSlug renders a slug as a human-readable fallback title, used
// when a tutorial page exposes no <title> or <h1> text.
// Example: "getting-started" → "Getting Started".
func TitleFromSlug(slug string) string {
	// cases.Caser is stateful, so a fresh one is needed per call.
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// FileWriter persists asset bytes to disk.
type FileWriter interface {
	// WriteIfChanged writes data to path, creating parent directories as
	// needed. The write is skipped when the file already holds
	// byte-identical content. Returns whether a write occurred.
	WriteIfChanged(path string, data []byte) (bool, error)
}
