package docsync

// Record is the on-disk representation of a synchronised tutorial.
// Records are keyed by Slug; uniqueness is assumed, not enforced.
type Record struct {
	Slug       string
	Title      string
	SourceURL  string
	Asset      string
	SourceType string
}

// ManifestStore loads and saves the list of previously synchronised
// tutorial records.
type ManifestStore interface {
	// Load reads records from path. A missing file yields an empty
	// list. Malformed input is tolerated; the parser returns whatever
	// well-formed records it can recover rather than failing.
	Load(path string) ([]Record, error)

	// Dump serialises records to path, writing only when the serialised
	// bytes differ from the file's current content. Returns whether a
	// write occurred.
	Dump(path string, records []Record) (bool, error)
}
