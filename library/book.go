package library

import (
	"errors"
	"fmt"
	"strings"

	"book_catalog/utils"
)

var ErrInvalidBook = errors.New("invalid book")

// Book is one catalog record. It is never modified after the catalog loads.
type Book struct {
	ID            string  `toml:"id" validate:"required"`
	Title         string  `toml:"title"`
	Author        string  `toml:"author"`
	Genre         string  `toml:"genre"`
	Rating        float64 `toml:"rating" validate:"gte=0,lte=5"`
	Reviews       int     `toml:"reviews" validate:"gte=0"`
	Description   string  `toml:"description"`
	CoverURL      string  `toml:"cover_url"`
	PublishedYear int     `toml:"published_year"`
	ISBN          string  `toml:"isbn" validate:"omitempty,isbn"`
	Pages         int     `toml:"pages" validate:"gt=0"`
	Language      string  `toml:"language"`
	Featured      bool    `toml:"featured"`
}

func (b Book) validate() error {
	b.ID = strings.TrimSpace(b.ID)
	errs := utils.ValidateStruct(b)
	if len(errs) == 0 {
		return nil
	}
	if b.ID == "" {
		return fmt.Errorf("%w: empty id (title %q)", ErrInvalidBook, b.Title)
	}
	return fmt.Errorf("%w %s: %s", ErrInvalidBook, b.ID, errs[0])
}
