// Package notebook provides minimal parsing and sanitising of Jupyter
// notebook files produced by the tutorial sync. It understands just
// enough of the nbformat JSON structure to filter out cells that mutate
// the environment before a notebook is handed to an execution harness.
package notebook

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/xsnow-dev/docsync"
)

// installMarkers are substrings that identify dependency-install cells.
// Such cells dramatically slow down or destabilise CI runs.
var installMarkers = []string{"%pip install", "pip install", "!pip install"}

// Notebook is a parsed .ipynb file. Fields not needed for sanitising are
// carried through as raw JSON.
type Notebook struct {
	Cells         []Cell          `json:"cells"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	NBFormat      int             `json:"nbformat"`
	NBFormatMinor int             `json:"nbformat_minor"`
}

// Cell is a single notebook cell.
type Cell struct {
	CellType string `json:"cell_type"`
	Source   Source `json:"source"`
}

// Source is notebook cell source text. nbformat stores it either as a
// single string or as a list of line strings.
type Source string

// UnmarshalJSON accepts both source representations.
func (s *Source) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Source(single)
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	*s = Source(strings.Join(lines, ""))
	return nil
}

// IsCode reports whether the cell is an executable code cell.
func (c *Cell) IsCode() bool {
	return c.CellType == "code"
}

// HasInstallCommand reports whether the cell contains a dependency
// install command.
func (c *Cell) HasInstallCommand() bool {
	for _, marker := range installMarkers {
		if strings.Contains(string(c.Source), marker) {
			return true
		}
	}
	return false
}

// Read parses a notebook file.
func Read(path string) (*Notebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, docsync.Errorf(docsync.EINVALID, "failed to parse notebook %s: %v", path, err)
	}
	return &nb, nil
}

// Sanitize returns a copy of nb with install-command code cells removed,
// along with the number of cells dropped. Markdown and other non-code
// cells are always kept.
func Sanitize(nb *Notebook) (*Notebook, int) {
	out := &Notebook{
		Metadata:      nb.Metadata,
		NBFormat:      nb.NBFormat,
		NBFormatMinor: nb.NBFormatMinor,
	}

	skipped := 0
	for _, cell := range nb.Cells {
		if cell.IsCode() && cell.HasInstallCommand() {
			skipped++
			continue
		}
		out.Cells = append(out.Cells, cell)
	}
	return out, skipped
}

// CodeCellCount returns the number of executable code cells.
func (n *Notebook) CodeCellCount() int {
	count := 0
	for _, cell := range n.Cells {
		if cell.IsCode() {
			count++
		}
	}
	return count
}
