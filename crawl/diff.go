package crawl

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/xsnow-dev/docsync"
)

// Summarize compares a previous manifest list against a newly computed
// one and reports added, removed and updated slugs. Records without a
// slug are ignored. Returns "No manifest changes detected." when all
// three categories are empty.
func Summarize(previous, current []docsync.Record) string {
	prev := slugMap(previous)
	curr := slugMap(current)

	var added, removed, changed []string
	for slug := range curr {
		if _, ok := prev[slug]; !ok {
			added = append(added, slug)
		}
	}
	for slug, prevRecord := range prev {
		currRecord, ok := curr[slug]
		if !ok {
			removed = append(removed, slug)
			continue
		}
		if recordHash(prevRecord) != recordHash(currRecord) {
			changed = append(changed, slug)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	sort.Strings(changed)

	var lines []string
	if len(added) > 0 {
		lines = append(lines, "Added: "+strings.Join(added, ", "))
	}
	if len(removed) > 0 {
		lines = append(lines, "Removed: "+strings.Join(removed, ", "))
	}
	if len(changed) > 0 {
		lines = append(lines, "Updated: "+strings.Join(changed, ", "))
	}
	if len(lines) == 0 {
		return "No manifest changes detected."
	}
	return strings.Join(lines, "; ")
}

func slugMap(records []docsync.Record) map[string]docsync.Record {
	m := make(map[string]docsync.Record, len(records))
	for _, r := range records {
		if r.Slug == "" {
			continue
		}
		m[r.Slug] = r
	}
	return m
}

// recordHash computes a deterministic digest over the record's fields as
// sorted key=value pairs, null-separated, using xxhash.
func recordHash(r docsync.Record) uint64 {
	h := xxhash.New()
	// Keys in sorted order.
	pairs := []struct{ key, value string }{
		{"asset", r.Asset},
		{"slug", r.Slug},
		{"source_type", r.SourceType},
		{"source_url", r.SourceURL},
		{"title", r.Title},
	}
	for _, p := range pairs {
		_, _ = h.WriteString(p.key)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(p.value)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
