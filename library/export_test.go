package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReadingList(t *testing.T) {
	books := []Book{
		{ID: "2", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", PublishedYear: 1965, ISBN: "978-0441172719"},
		{ID: "9", Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1937},
	}

	got := FormatReadingList("My Reading List", books)

	want := "My Reading List\n" +
		"\n1. Dune by Frank Herbert (Science Fiction, 1965) ISBN 978-0441172719" +
		"\n2. The Hobbit by J.R.R. Tolkien (Fantasy, 1937)\n"
	assert.Equal(t, want, got)
}
