package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"book_catalog/lang"
	"book_catalog/library"
)

// BookItem adapts a library.Book to a bubbles list item.
type BookItem struct {
	library.Book
}

func (b BookItem) Title() string { return b.Book.Title }

func (b BookItem) Description() string {
	return fmt.Sprintf(lang.Active().Detail.ByTemplate, b.Author) + " · " + b.Genre
}

func (b BookItem) FilterValue() string {
	return b.Book.Title + " " + b.Author + " " + b.Genre
}

func bookItems(books []library.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = BookItem{Book: b}
	}
	return items
}

// stars renders a 0-5 rating as filled and empty stars.
func stars(rating float64) string {
	n := int(rating + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func ratingLine(b library.Book) string {
	return RatingStyle.Render(stars(b.Rating)) + fmt.Sprintf(" %.1f ", b.Rating) +
		fmt.Sprintf(lang.Active().Detail.ReviewsCount, b.Reviews)
}

// renderBook draws the two-line row used both by page sections and lists.
func renderBook(b library.Book, width int, selected, inList bool) string {
	if width < 12 {
		width = 12
	}
	title := b.Title
	if inList {
		title += " " + InListMark
	}
	desc := fmt.Sprintf(lang.Active().Detail.ByTemplate, b.Author) + " · " + b.Genre + " · " +
		stars(b.Rating) + fmt.Sprintf(" %.1f", b.Rating)
	desc = runewidth.Truncate(desc, width-4, "…")

	if selected {
		return SelectedTitleStyle.Render(title) + "\n" + SelectedDescStyle.Render(desc)
	}
	return NormalTitleStyle.Render(title) + "\n" + NormalDescStyle.Render(desc)
}

// ---------------- BookDelegate ----------------
type BookDelegate struct {
	list.DefaultDelegate
}

func (d *BookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var title, desc string
	switch v := item.(type) {
	case BookItem:
		title = v.Title()
		desc = runewidth.Truncate(v.Description(), m.Width()-6, "…")
	case GenreItem:
		title = v.Title()
		desc = runewidth.Truncate(v.Description(), m.Width()-6, "…")
	default:
		title = lang.Active().Common.UnknownItem
	}
	if index == m.Index() {
		title = SelectedTitleStyle.Render(title)
		desc = SelectedDescStyle.Render(desc)
	} else {
		title = NormalTitleStyle.Render(title)
		desc = NormalDescStyle.Render(desc)
	}
	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func (d *BookDelegate) Height() int  { return 2 }
func (d *BookDelegate) Spacing() int { return 1 }
func (d *BookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func listSettings(l *list.Model) {
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
}
