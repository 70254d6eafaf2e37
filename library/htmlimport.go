package library

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoCatalogTable = errors.New("no catalog table found")

// ParseHTML reads a catalog exported as an HTML table. The header row names
// the columns (id, title, author, genre, rating, reviews, description, cover,
// year, isbn, pages, language, featured); unknown columns are ignored.
// A table with class "catalog" wins over the first table in the document.
func ParseHTML(r io.Reader) (*Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table.catalog").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return nil, ErrNoCatalogTable
	}

	var columns []string
	table.Find("tr").First().Find("th, td").Each(func(i int, sel *goquery.Selection) {
		columns = append(columns, strings.ToLower(strings.TrimSpace(sel.Text())))
	})

	var (
		books  []Book
		rowErr error
	)
	table.Find("tr").Slice(1, goquery.ToEnd).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}
		var b Book
		cells.EachWithBreak(func(j int, cell *goquery.Selection) bool {
			if j >= len(columns) {
				return false
			}
			rowErr = setField(&b, columns[j], cell)
			return rowErr == nil
		})
		if rowErr != nil {
			rowErr = fmt.Errorf("row %d: %w", i+1, rowErr)
			return false
		}
		books = append(books, b)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	var genres []string
	doc.Find("ul.genres li").Each(func(i int, sel *goquery.Selection) {
		if g := strings.TrimSpace(sel.Text()); g != "" {
			genres = append(genres, g)
		}
	})

	return NewCatalog(books, genres)
}

func setField(b *Book, column string, cell *goquery.Selection) error {
	text := strings.TrimSpace(cell.Text())
	var err error
	switch column {
	case "id":
		b.ID = text
	case "title":
		b.Title = text
	case "author":
		b.Author = text
	case "genre":
		b.Genre = text
	case "description":
		b.Description = text
	case "cover", "cover_url":
		if src, ok := cell.Find("img").Attr("src"); ok {
			text = src
		} else if href, ok := cell.Find("a").Attr("href"); ok {
			text = href
		}
		b.CoverURL = text
	case "isbn":
		b.ISBN = text
	case "language":
		b.Language = text
	case "rating":
		b.Rating, err = strconv.ParseFloat(text, 64)
	case "reviews":
		b.Reviews, err = atoiLoose(text)
	case "year", "published_year":
		b.PublishedYear, err = atoiLoose(text)
	case "pages":
		b.Pages, err = atoiLoose(text)
	case "featured":
		switch strings.ToLower(text) {
		case "yes", "true", "1", "✓", "★":
			b.Featured = true
		}
	}
	if err != nil {
		return fmt.Errorf("column %s: %w", column, err)
	}
	return nil
}

// atoiLoose accepts thousands separators such as "12,345".
func atoiLoose(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.ReplaceAll(s, ",", ""))
}
