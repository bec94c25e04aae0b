package docsync

// TutorialPage holds the content extracted from a single tutorial HTML
// page.
type TutorialPage struct {
	// Title is the first non-empty <title> (or, failing that, <h1>)
	// text, whitespace-trimmed. Empty when the page exposes neither.
	Title string

	// NotebookLinks are absolute URLs of anchors ending in ".ipynb",
	// in document order. Duplicates are preserved.
	NotebookLinks []string

	// CodeBlocks are the text contents of <code> elements nested inside
	// <pre> elements, in document order, with leading and trailing
	// newlines trimmed. Blocks that are empty after trimming are
	// dropped.
	CodeBlocks []string
}

// LinkExtractor discovers tutorial links on an index page.
type LinkExtractor interface {
	// ExtractLinks scans anchor elements in html, keeps hrefs containing
	// pattern as a substring (in-page "#" anchors are ignored), resolves
	// them against baseURL, and returns the deduplicated result sorted
	// ascending. Malformed HTML is tolerated by best-effort scanning.
	ExtractLinks(html, baseURL, pattern string) ([]string, error)
}

// PageExtractor parses a tutorial page into its content parts.
type PageExtractor interface {
	// ExtractPage parses html fetched from pageURL. Relative notebook
	// links are resolved against pageURL. The parse has no side effects.
	ExtractPage(html, pageURL string) (*TutorialPage, error)
}
