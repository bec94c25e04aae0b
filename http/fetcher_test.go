package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xsnow-dev/docsync"
	dochttp "github.com/xsnow-dev/docsync/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>hello</html>"))
		}))
		defer srv.Close()

		fetcher := dochttp.NewFetcher()
		body, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []byte("<html>hello</html>"), body)
	})

	t.Run("sends the sync user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		fetcher := dochttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "xsnow-sync/1.0", gotUA)
	})

	t.Run("non-200 status is an unavailable error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		fetcher := dochttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, docsync.EUNAVAILABLE, docsync.ErrorCode(err))
	})

	t.Run("connection failure returns an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		fetcher := dochttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
	})

	t.Run("canceled context aborts before the request", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := dochttp.NewFetcher(dochttp.WithRequestsPerSecond(0.001))
		_, err := fetcher.Fetch(ctx, "http://127.0.0.1:0/never")

		require.Error(t, err)
	})

	t.Run("custom user agent option", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		fetcher := dochttp.NewFetcher(
			dochttp.WithUserAgent("custom/2.0"),
			dochttp.WithTimeout(5*time.Second),
		)
		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "custom/2.0", gotUA)
	})
}
