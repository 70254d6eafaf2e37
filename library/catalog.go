package library

import (
	"fmt"
	"sort"
)

// Catalog is the read-only, ordered book collection plus its genre labels.
// Accessors return copies so callers cannot mutate it.
type Catalog struct {
	books  []Book
	genres []string
	index  map[string]int
}

type GenreCount struct {
	Genre string
	Count int
}

// NewCatalog validates books and builds a catalog. When genres is empty the
// label set is taken from the books in first-appearance order.
func NewCatalog(books []Book, genres []string) (*Catalog, error) {
	if len(genres) == 0 {
		seen := make(map[string]bool)
		for _, b := range books {
			if b.Genre != "" && !seen[b.Genre] {
				seen[b.Genre] = true
				genres = append(genres, b.Genre)
			}
		}
	}

	known := make(map[string]bool, len(genres))
	for _, g := range genres {
		known[g] = true
	}

	index := make(map[string]int, len(books))
	for i, b := range books {
		if err := b.validate(); err != nil {
			return nil, err
		}
		if _, dup := index[b.ID]; dup {
			return nil, fmt.Errorf("%w %s: duplicate id", ErrInvalidBook, b.ID)
		}
		if !known[b.Genre] {
			return nil, fmt.Errorf("%w %s: unknown genre %q", ErrInvalidBook, b.ID, b.Genre)
		}
		index[b.ID] = i
	}

	return &Catalog{
		books:  append([]Book(nil), books...),
		genres: append([]string(nil), genres...),
		index:  index,
	}, nil
}

func (c *Catalog) Books() []Book {
	return append([]Book(nil), c.books...)
}

func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

func (c *Catalog) Len() int { return len(c.books) }

func (c *Catalog) find(id string) (Book, bool) {
	i, ok := c.index[id]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

func (c *Catalog) Featured() []Book {
	out := []Book{}
	for _, b := range c.books {
		if b.Featured {
			out = append(out, b)
		}
	}
	return out
}

func (c *Catalog) ByGenre(genre string) []Book {
	out := []Book{}
	for _, b := range c.books {
		if b.Genre == genre {
			out = append(out, b)
		}
	}
	return out
}

// GenreCounts lists every genre label, in label order, with its book count.
func (c *Catalog) GenreCounts() []GenreCount {
	counts := make(map[string]int, len(c.genres))
	for _, b := range c.books {
		counts[b.Genre]++
	}
	out := make([]GenreCount, len(c.genres))
	for i, g := range c.genres {
		out[i] = GenreCount{Genre: g, Count: counts[g]}
	}
	return out
}

// TopRated returns the whole catalog by descending rating, ties in catalog order.
func (c *Catalog) TopRated() []Book {
	out := c.Books()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}
