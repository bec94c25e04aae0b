package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xsnow-dev/docsync"
)

// Ensure PageExtractor implements docsync.PageExtractor at compile time.
var _ docsync.PageExtractor = (*PageExtractor)(nil)

// PageExtractor parses a tutorial page into its title, notebook links
// and code blocks.
type PageExtractor struct{}

// NewPageExtractor creates a new PageExtractor.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{}
}

// ExtractPage parses html fetched from pageURL. The parse is best-effort
// and has no side effects; malformed markup does not fail it.
func (e *PageExtractor) ExtractPage(html, pageURL string) (*docsync.TutorialPage, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docsync.Errorf(docsync.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsync.Errorf(docsync.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &docsync.TutorialPage{}

	// First non-empty <title> or <h1> text wins, in document order.
	doc.Find("title, h1").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			page.Title = text
			return false
		}
		return true
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasSuffix(href, ".ipynb") {
			return
		}
		if resolved := resolveURL(base, href); resolved != "" {
			page.NotebookLinks = append(page.NotebookLinks, resolved)
		}
	})

	doc.Find("pre code").Each(func(_ int, sel *goquery.Selection) {
		block := strings.Trim(sel.Text(), "\n")
		if block != "" {
			page.CodeBlocks = append(page.CodeBlocks, block)
		}
	})

	return page, nil
}
