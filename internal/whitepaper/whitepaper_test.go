package whitepaper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestCatalog(t *testing.T) {
	entries := Catalog()
	require.Len(t, entries, 7)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].ID, entries[i].ID)
	}

	e, ok := Lookup("dex")
	require.True(t, ok)
	assert.Equal(t, "Megapayer DEX", e.Title)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestExcerpt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dex-whitepaper-excerpt.md", "# DEX\n\nPools.")
	s := NewStore(dir)

	doc, err := s.Excerpt("dex", "Custom Title")
	require.NoError(t, err)
	assert.Equal(t, "Custom Title", doc.Title)
	assert.Contains(t, string(doc.Markdown), "Pools.")

	doc, err = s.Excerpt("dex", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Megapayer DEX", doc.Title)
}

func TestExcerptNotFound(t *testing.T) {
	s := NewStore(t.TempDir())

	for _, id := range []string{"dex", "../etc/passwd", "DEX", "", "a/b"} {
		_, err := s.Excerpt(id, "")
		assert.ErrorIs(t, err, ErrNotFound, id)
	}
}

func TestHasExcerpt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wallet-whitepaper-excerpt.md", "# Wallet")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dex-whitepaper-excerpt.md"), 0755))
	s := NewStore(dir)

	assert.True(t, s.HasExcerpt("wallet"))
	assert.False(t, s.HasExcerpt("dex"))
	assert.False(t, s.HasExcerpt("nonexistent-id"))
	assert.False(t, s.HasExcerpt("../wallet"))
}

func TestFullPDF(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wallet-whitepaper.pdf", "%PDF-1.4")
	s := NewStore(dir)

	data, err := s.FullPDF("wallet")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	_, err = s.FullPDF("dex")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dex-whitepaper-excerpt.md", "a")
	writeFile(t, dir, "wallet-whitepaper-excerpt.md", "b")
	writeFile(t, dir, "wallet-whitepaper.pdf", "c")
	writeFile(t, dir, "notes.txt", "d")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "dex-whitepaper-excerpt.md"), old, old))

	list, err := NewStore(dir).Available()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "wallet", list[0].ID)
	assert.True(t, list[0].HasPDF)
	assert.Equal(t, "dex", list[1].ID)
	assert.False(t, list[1].HasPDF)
}

func TestRenderHTML(t *testing.T) {
	doc := Document{ID: "dex", Title: "DEX <Draft>", Markdown: []byte("## Pools\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")}

	html, err := RenderHTML(doc, "https://megapayer.io/")
	require.NoError(t, err)
	out := string(html)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "DEX &lt;Draft&gt;")
	assert.Contains(t, out, `<h2 id="pools">Pools</h2>`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "data:image/png;base64,")
	assert.Contains(t, out, "https://megapayer.io/whitepaper/dex")
}

func TestQRDataURI(t *testing.T) {
	uri, err := QRDataURI("https://megapayer.io/whitepaper/wallet")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(uri), "data:image/png;base64,"))
}
