// Package mock provides function-field mock implementations of the
// docsync domain interfaces for use in tests.
package mock

import (
	"context"

	"github.com/xsnow-dev/docsync"
)

var _ docsync.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docsync.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}
