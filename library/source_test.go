package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Greater(t, c.Len(), 0)
	assert.NotEmpty(t, c.Featured())
	for _, b := range c.Books() {
		assert.Contains(t, c.Genres(), b.Genre, b.ID)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.toml")
	content := `
genres = ["Fantasy"]

[[books]]
id = "x1"
title = "The Hobbit"
author = "J.R.R. Tolkien"
genre = "Fantasy"
rating = 4.6
reviews = 10
published_year = 1937
pages = 310
featured = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	b, ok := c.find("x1")
	require.True(t, ok)
	assert.Equal(t, "The Hobbit", b.Title)
	assert.Equal(t, 1937, b.PublishedYear)
	assert.True(t, b.Featured)
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	_, err := LoadFile("books.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFileInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.toml")
	content := `
[[books]]
id = "1"
genre = "G"
pages = 1

[[books]]
id = "1"
genre = "G"
pages = 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidBook)
}

const htmlCatalog = `<html><body>
<ul class="genres"><li>Fantasy</li><li>Mystery</li></ul>
<table class="catalog">
  <tr><th>ID</th><th>Title</th><th>Author</th><th>Genre</th><th>Rating</th><th>Reviews</th><th>Year</th><th>Pages</th><th>Cover</th><th>Featured</th></tr>
  <tr><td>1</td><td>The Hobbit</td><td>J.R.R. Tolkien</td><td>Fantasy</td><td>4.6</td><td>29,870</td><td>1937</td><td>310</td><td><img src="https://example.com/hobbit.jpg"></td><td>yes</td></tr>
  <tr><td>2</td><td>Gone Girl</td><td>Gillian Flynn</td><td>Mystery</td><td>4.0</td><td>21340</td><td>2012</td><td>432</td><td></td><td></td></tr>
</table>
</body></html>`

func TestParseHTML(t *testing.T) {
	c, err := ParseHTML(strings.NewReader(htmlCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"Fantasy", "Mystery"}, c.Genres())
	require.Equal(t, 2, c.Len())

	hobbit, ok := c.find("1")
	require.True(t, ok)
	assert.Equal(t, "The Hobbit", hobbit.Title)
	assert.Equal(t, 29870, hobbit.Reviews)
	assert.Equal(t, "https://example.com/hobbit.jpg", hobbit.CoverURL)
	assert.True(t, hobbit.Featured)

	gone, _ := c.find("2")
	assert.False(t, gone.Featured)
	assert.InDelta(t, 4.0, gone.Rating, 0.001)
}

func TestParseHTMLErrors(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	assert.ErrorIs(t, err, ErrNoCatalogTable)

	bad := `<table><tr><th>id</th><th>pages</th><th>genre</th></tr><tr><td>1</td><td>many</td><td>G</td></tr></table>`
	_, err = ParseHTML(strings.NewReader(bad))
	assert.ErrorContains(t, err, "row 1")
}

func TestLoadFileHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.html")
	require.NoError(t, os.WriteFile(path, []byte(htmlCatalog), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}
