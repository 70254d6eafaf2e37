package session

import (
	"book_catalog/library"
)

// Heading selects the title of the results section.
type Heading int

const (
	HeadingAllBooks Heading = iota
	HeadingBrowseAll
	HeadingSearchResults
)

// Heading picks the results title: an active search wins over the view.
func (s State) Heading() Heading {
	switch {
	case s.Filter.Search != "":
		return HeadingSearchResults
	case s.View == ViewBrowse:
		return HeadingBrowseAll
	default:
		return HeadingAllBooks
	}
}

// Results runs the current filter through the memoised query engine.
func (s State) Results(m *library.Memo) []library.Book {
	return m.Query(s.Filter)
}

// ShowsResults reports whether the active view renders the filtered list.
func (s State) ShowsResults() bool {
	return s.View == ViewHome || s.View == ViewBrowse
}
