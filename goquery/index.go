// Package goquery provides HTML extraction implementations backed by
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xsnow-dev/docsync"
)

// Ensure IndexExtractor implements docsync.LinkExtractor at compile time.
var _ docsync.LinkExtractor = (*IndexExtractor)(nil)

// IndexExtractor discovers tutorial links on an index page.
type IndexExtractor struct{}

// NewIndexExtractor creates a new IndexExtractor.
func NewIndexExtractor() *IndexExtractor {
	return &IndexExtractor{}
}

// ExtractLinks scans anchors in html and returns the sorted, deduplicated
// set of absolute URLs whose href contains pattern as a substring.
// In-page anchors (hrefs starting with "#") and anchors without an href
// are ignored. The substring check runs against the raw href, before
// resolution against baseURL.
func (e *IndexExtractor) ExtractLinks(html, baseURL, pattern string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docsync.Errorf(docsync.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsync.Errorf(docsync.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if !strings.Contains(href, pattern) {
			return
		}

		if resolved := resolveURL(base, href); resolved != "" {
			seen[resolved] = true
		}
	})

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
