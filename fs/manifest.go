package fs

import (
	"os"
	"strings"

	"github.com/xsnow-dev/docsync"
)

// Ensure ManifestStore implements docsync.ManifestStore at compile time.
var _ docsync.ManifestStore = (*ManifestStore)(nil)

// ManifestStore reads and writes the tutorial manifest file.
//
// The format is a single top-level "tutorials:" key followed by a list
// of records, each introduced by "  - slug: <value>" with further
// "    key: value" lines indented under it. Values containing any of
// the characters `: # - { } [ ]`, a newline, or a double quote are
// wrapped in double quotes with embedded quotes escaped. One explicit
// codec handles both directions; there is no structured-data library
// fallback.
type ManifestStore struct{}

// NewManifestStore creates a new ManifestStore.
func NewManifestStore() *ManifestStore {
	return &ManifestStore{}
}

// Load reads records from path. A missing file yields an empty list.
// Malformed lines are skipped; the parser returns whatever well-formed
// records it can recover.
func (s *ManifestStore) Load(path string) ([]docsync.Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []docsync.Record
	var current *docsync.Record

	for _, line := range strings.Split(string(data), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		if strings.HasPrefix(stripped, "tutorials:") {
			continue
		}
		if strings.HasPrefix(stripped, "-") {
			if current != nil {
				records = append(records, *current)
			}
			current = &docsync.Record{}
			if remainder := strings.TrimSpace(stripped[1:]); remainder != "" {
				setField(current, remainder)
			}
			continue
		}
		if current == nil {
			continue
		}
		if strings.Contains(stripped, ":") {
			setField(current, stripped)
		}
	}
	if current != nil {
		records = append(records, *current)
	}

	return records, nil
}

// setField assigns a "key: value" line to the matching record field.
// Unknown keys are ignored.
func setField(r *docsync.Record, line string) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	value = unescapeValue(strings.TrimSpace(value))

	switch strings.TrimSpace(key) {
	case "slug":
		r.Slug = value
	case "title":
		r.Title = value
	case "source_url":
		r.SourceURL = value
	case "asset":
		r.Asset = value
	case "source_type":
		r.SourceType = value
	}
}

func unescapeValue(value string) string {
	if value == "''" {
		return ""
	}
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return strings.ReplaceAll(value[1:len(value)-1], `\"`, `"`)
	}
	return value
}

// Dump serialises records to path, writing only when the serialised
// bytes differ from the file's current content (or the file does not
// exist). Returns whether a write occurred.
func (s *ManifestStore) Dump(path string, records []docsync.Record) (bool, error) {
	var b strings.Builder
	b.WriteString("tutorials:\n")

	for _, r := range records {
		b.WriteString("  - slug: ")
		b.WriteString(escapeValue(r.Slug))
		b.WriteString("\n")
		writeKey(&b, "title", r.Title)
		writeKey(&b, "source_url", r.SourceURL)
		writeKey(&b, "asset", r.Asset)
		writeKey(&b, "source_type", r.SourceType)
	}

	data := []byte(b.String())

	existing, err := os.ReadFile(path)
	if err == nil && string(existing) == string(data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}

	return true, nil
}

// writeKey emits an indented "key: value" line; empty values are
// omitted, matching the load side which leaves absent fields empty.
func writeKey(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString("    ")
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(escapeValue(value))
	b.WriteString("\n")
}

func escapeValue(value string) string {
	if value == "" {
		return "''"
	}
	if strings.ContainsAny(value, ":#-{}[]\n\"") {
		return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	}
	return value
}
