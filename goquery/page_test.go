package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xsnow-dev/docsync/goquery"
)

func TestPageExtractor_ExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, notebook links and code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>  Loading Data  </title></head>
<body>
<h1>Loading Data (rendered)</h1>
<a href="../_downloads/loading.ipynb">Download notebook</a>
<pre><code>import xsnow
ds = xsnow.open("profile.caaml")</code></pre>
<pre><code>
ds.plot()
</code></pre>
</body>
</html>`

		extractor := goquery.NewPageExtractor()
		page, err := extractor.ExtractPage(html, "https://example.com/en/latest/tutorials/loading.html")

		require.NoError(t, err)
		assert.Equal(t, "Loading Data", page.Title)
		assert.Equal(t, []string{"https://example.com/en/latest/_downloads/loading.ipynb"}, page.NotebookLinks)
		assert.Equal(t, []string{
			"import xsnow\nds = xsnow.open(\"profile.caaml\")",
			"ds.plot()",
		}, page.CodeBlocks)
	})

	t.Run("falls back to h1 when title is empty", func(t *testing.T) {
		t.Parallel()

		html := `<head><title>   </title></head><body><h1>From Heading</h1></body>`

		extractor := goquery.NewPageExtractor()
		page, err := extractor.ExtractPage(html, "https://example.com/tutorials/x.html")

		require.NoError(t, err)
		assert.Equal(t, "From Heading", page.Title)
	})

	t.Run("leaves title empty when neither tag has text", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewPageExtractor()
		page, err := extractor.ExtractPage(`<body><p>no headings here</p></body>`, "https://example.com/t.html")

		require.NoError(t, err)
		assert.Empty(t, page.Title)
	})

	t.Run("keeps duplicate notebook links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/dl/b.ipynb">B</a>
<a href="/dl/a.ipynb">A</a>
<a href="/dl/b.ipynb">B again</a>
<a href="/dl/readme.txt">Not a notebook</a>
</body>`

		extractor := goquery.NewPageExtractor()
		page, err := extractor.ExtractPage(html, "https://example.com/tutorials/x.html")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/dl/b.ipynb",
			"https://example.com/dl/a.ipynb",
			"https://example.com/dl/b.ipynb",
		}, page.NotebookLinks)
	})

	t.Run("ignores code outside pre and empty blocks", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<code>inline = True</code>
<pre><code>

</code></pre>
<pre><code>kept = 1</code></pre>
</body>`

		extractor := goquery.NewPageExtractor()
		page, err := extractor.ExtractPage(html, "https://example.com/tutorials/x.html")

		require.NoError(t, err)
		assert.Equal(t, []string{"kept = 1"}, page.CodeBlocks)
	})

	t.Run("trims only newlines from code blocks", func(t *testing.T) {
		t.Parallel()

		html := "<pre><code>\n    indented = True\n</code></pre>"

		extractor := goquery.NewPageExtractor()
		page, err := extractor.ExtractPage(html, "https://example.com/tutorials/x.html")

		require.NoError(t, err)
		assert.Equal(t, []string{"    indented = True"}, page.CodeBlocks)
	})
}
