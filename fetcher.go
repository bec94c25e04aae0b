package docsync

import "context"

// Fetcher retrieves raw bytes from URLs.
// Every fetch is attempted exactly once; callers decide whether a
// failure is fatal or merely logged.
type Fetcher interface {
	// Fetch downloads the resource at url. The context bounds the
	// request; there is no retry.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
