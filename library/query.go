package library

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"book_catalog/lang"
)

type SortKey string

const (
	SortRating  SortKey = "rating"
	SortTitle   SortKey = "title"
	SortAuthor  SortKey = "author"
	SortYear    SortKey = "year"
	SortReviews SortKey = "reviews"
)

var sortKeys = []SortKey{SortRating, SortTitle, SortAuthor, SortYear, SortReviews}

// SortKeys returns the keys in selector order.
func SortKeys() []SortKey {
	return append([]SortKey(nil), sortKeys...)
}

func ParseSortKey(s string) (SortKey, bool) {
	for _, k := range sortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return SortRating, false
}

// Filter is the full input of a catalog query besides the books themselves.
type Filter struct {
	Search string
	Genre  string
	Sort   SortKey
}

// IsZero reports whether no search text or genre restriction is applied.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Genre == ""
}

func (f Filter) matches(b Book) bool {
	if f.Genre != "" && b.Genre != f.Genre {
		return false
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Genre), q)
}

// Query filters books and sorts the matches by f.Sort using the active
// locale's collation for text keys. The input is never modified and the
// result is never nil.
func Query(books []Book, f Filter) []Book {
	return query(books, f, lang.Tag())
}

func query(books []Book, f Filter, tag language.Tag) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if f.matches(b) {
			out = append(out, b)
		}
	}
	sortBooks(out, f.Sort, tag)
	return out
}

func sortBooks(books []Book, key SortKey, tag language.Tag) {
	var less func(a, b Book) bool
	switch key {
	case SortTitle:
		col := collate.New(tag)
		less = func(a, b Book) bool { return col.CompareString(a.Title, b.Title) < 0 }
	case SortAuthor:
		col := collate.New(tag)
		less = func(a, b Book) bool { return col.CompareString(a.Author, b.Author) < 0 }
	case SortYear:
		less = func(a, b Book) bool { return a.PublishedYear > b.PublishedYear }
	case SortReviews:
		less = func(a, b Book) bool { return a.Reviews > b.Reviews }
	default:
		less = func(a, b Book) bool { return a.Rating > b.Rating }
	}
	sort.SliceStable(books, func(i, j int) bool { return less(books[i], books[j]) })
}

// Memo remembers the most recent query so repeated renders with unchanged
// filters reuse the result. Returned slices are shared; treat them as
// read-only.
type Memo struct {
	books  []Book
	key    Filter
	tag    language.Tag
	result []Book
	valid  bool
}

func NewMemo(books []Book) *Memo {
	return &Memo{books: books}
}

func (m *Memo) Query(f Filter) []Book {
	tag := lang.Tag()
	if m.valid && m.key == f && m.tag == tag {
		return m.result
	}
	m.result = query(m.books, f, tag)
	m.key = f
	m.tag = tag
	m.valid = true
	return m.result
}
