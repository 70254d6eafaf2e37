package library

import (
	"fmt"
	"strings"
)

// FormatReadingList renders the list as numbered plain text for the clipboard.
func FormatReadingList(header string, books []Book) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for i, b := range books {
		fmt.Fprintf(&sb, "\n%d. %s by %s (%s, %d)", i+1, b.Title, b.Author, b.Genre, b.PublishedYear)
		if b.ISBN != "" {
			fmt.Fprintf(&sb, " ISBN %s", b.ISBN)
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
