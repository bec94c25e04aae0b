package mock

import "github.com/xsnow-dev/docsync"

var _ docsync.ManifestStore = (*ManifestStore)(nil)

// ManifestStore is a mock implementation of docsync.ManifestStore.
type ManifestStore struct {
	LoadFn func(path string) ([]docsync.Record, error)
	DumpFn func(path string, records []docsync.Record) (bool, error)
}

func (s *ManifestStore) Load(path string) ([]docsync.Record, error) {
	return s.LoadFn(path)
}

func (s *ManifestStore) Dump(path string, records []docsync.Record) (bool, error) {
	return s.DumpFn(path, records)
}

var _ docsync.FileWriter = (*FileWriter)(nil)

// FileWriter is a mock implementation of docsync.FileWriter.
type FileWriter struct {
	WriteIfChangedFn func(path string, data []byte) (bool, error)
}

func (w *FileWriter) WriteIfChanged(path string, data []byte) (bool, error) {
	return w.WriteIfChangedFn(path, data)
}
