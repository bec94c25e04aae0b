package mock

import "github.com/xsnow-dev/docsync"

var _ docsync.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docsync.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL, pattern string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL, pattern string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL, pattern)
}

var _ docsync.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of docsync.PageExtractor.
type PageExtractor struct {
	ExtractPageFn func(html, pageURL string) (*docsync.TutorialPage, error)
}

func (e *PageExtractor) ExtractPage(html, pageURL string) (*docsync.TutorialPage, error) {
	return e.ExtractPageFn(html, pageURL)
}
