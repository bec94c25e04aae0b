package crawl

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/xsnow-dev/docsync"
)

// VersionChecker retrieves the published documentation version.
type VersionChecker struct {
	Fetcher docsync.Fetcher
}

// Check fetches url and extracts the version banner (e.g. "Version: dev
// (abcdef)"). When the payload turns out to be a JSON object instead of
// HTML, the first string value in sorted key order is accepted as the
// version. That fallback is a best-effort heuristic with no strict
// contract; callers should not rely on key ordering of the endpoint.
func (c *VersionChecker) Check(ctx context.Context, url string) (*docsync.VersionCheck, error) {
	body, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, docsync.Errorf(docsync.EUNAVAILABLE, "unable to reach documentation at %s: %v", url, err)
	}

	version := docsync.ParseBannerVersion(string(body))
	if version == "" {
		version = firstStringValue(body)
	}
	if version == "" {
		return nil, docsync.Errorf(docsync.ENOTFOUND, "unable to locate a 'Version:' banner in the documentation page at %s", url)
	}

	return &docsync.VersionCheck{Version: version, URL: url}, nil
}

// firstStringValue returns the first non-empty top-level string value of
// a JSON object, walking keys in sorted order. Returns empty for
// anything that is not a JSON object.
func firstStringValue(data []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if s, ok := payload[k].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
