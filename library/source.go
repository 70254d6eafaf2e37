package library

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"book_catalog/utils"
)

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

//go:embed data/books.toml
var defaultCatalog string

type catalogFile struct {
	Genres []string `toml:"genres"`
	Books  []Book   `toml:"books"`
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

func LoadDefault() (*Catalog, error) {
	c, err := ParseTOML(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a .toml or .html catalog, decoding legacy encodings first.
func LoadFile(path string) (*Catalog, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".html", ".htm":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	text, err := utils.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c *Catalog
	if ext == ".toml" {
		c, err = ParseTOML(text)
	} else {
		c, err = ParseHTML(strings.NewReader(text))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	utils.Info("catalog loaded", "path", path, "books", c.Len(), "genres", len(c.genres))
	return c, nil
}

func ParseTOML(text string) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal([]byte(text), &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalog(f.Books, f.Genres)
}
