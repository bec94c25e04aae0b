package main_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/xsnow-dev/docsync/cmd/docsync"
	"github.com/xsnow-dev/docsync/crawl"
	"github.com/xsnow-dev/docsync/mock"
)

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("environment override skips the network", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:             testContext(),
			Stdout:          stdout,
			Stderr:          &bytes.Buffer{},
			VersionOverride: "pinned-1.0",
			Versions: &crawl.VersionChecker{Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					t.Fatal("fetch should not be called")
					return nil, nil
				},
			}},
		}

		cmd := &main.VersionCmd{URL: "https://example.com/"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "pinned-1.0\n", stdout.String())
	})

	t.Run("missing banner reports an error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Versions: &crawl.VersionChecker{Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return []byte("<p>bannerless</p>"), nil
				},
			}},
		}

		cmd := &main.VersionCmd{URL: "https://example.com/"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unable to locate a 'Version:' banner")
	})

	t.Run("fetch failure reports an error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Versions: &crawl.VersionChecker{Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return nil, fmt.Errorf("connection refused")
				},
			}},
		}

		cmd := &main.VersionCmd{URL: "https://example.com/"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unable to reach documentation")
	})
}
