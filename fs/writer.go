// Package fs provides file-based persistence for synchronised tutorial
// assets and the manifest.
package fs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/xsnow-dev/docsync"
)

// Ensure Writer implements docsync.FileWriter at compile time.
var _ docsync.FileWriter = (*Writer)(nil)

// Writer persists asset bytes to disk, skipping writes when the target
// already holds identical content.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteIfChanged writes data to path unless the file already exists with
// byte-identical content. Parent directories are created as needed.
// Returns whether a write occurred.
func (w *Writer) WriteIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}

	return true, nil
}
