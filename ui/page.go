package ui

import (
	"fmt"
	"strings"

	gloss "github.com/charmbracelet/lipgloss"

	"book_catalog/lang"
	"book_catalog/library"
	"book_catalog/session"
)

// pageRow is a selectable book on the scrolling page and the line it
// starts on.
type pageRow struct {
	book library.Book
	line int
}

// page is one render of the scrolling page for the current state.
type page struct {
	content    string
	rows       []pageRow
	browseLine int
}

type pageBuilder struct {
	sb         strings.Builder
	lines      int
	rows       []pageRow
	cursor     int
	width      int
	state      session.State
	browseLine int
}

func (p *pageBuilder) write(block string) {
	if p.lines > 0 {
		p.sb.WriteString("\n")
	}
	p.sb.WriteString(block)
	p.lines += gloss.Height(block)
}

func (p *pageBuilder) book(b library.Book) {
	idx := len(p.rows)
	p.rows = append(p.rows, pageRow{book: b, line: p.lines})
	p.write(renderBook(b, p.width, idx == p.cursor, p.state.InList(b.ID)) + "\n")
}

func contentWidth(width int) int {
	w := width - 4
	if w > ListMaxWidth {
		w = ListMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderPage lays out home, browse or reviews. Categories has its own list.
func renderPage(s session.State, cat *library.Catalog, memo *library.Memo, width, cursor int) page {
	p := &pageBuilder{
		cursor: cursor,
		width:  contentWidth(width),
		state:  s,
	}

	switch s.View {
	case session.ViewHome:
		p.hero()
		p.featured(cat.Featured())
		p.filterBar()
		p.results(s.Results(memo))
	case session.ViewBrowse:
		p.filterBar()
		p.results(s.Results(memo))
	case session.ViewReviews:
		p.write(SectionTitleStyle.Render(lang.Active().Page.TopRated))
		for _, b := range cat.TopRated() {
			p.book(b)
		}
	}

	return page{
		content:    PageStyle.Render(p.sb.String()),
		rows:       p.rows,
		browseLine: p.browseLine,
	}
}

func (p *pageBuilder) hero() {
	texts := lang.Active()
	w := p.width
	p.write(gloss.JoinVertical(gloss.Center,
		HeroStyle.Width(w).Render(texts.Hero.Headline),
		HeroAccentStyle.Width(w).Render(texts.Hero.HeadlineAccent),
		HeroTaglineStyle.Width(w).Render(texts.Hero.Tagline),
		gloss.PlaceHorizontal(w, gloss.Center, ButtonStyle.Render("e "+texts.Hero.StartExploring)),
	))
}

func (p *pageBuilder) featured(books []library.Book) {
	texts := lang.Active()
	title := SectionTitleStyle.Render(texts.Page.Featured)
	counter := CounterStyle.Render("♥ " + fmt.Sprintf(texts.Page.ReadingListButton, p.state.List.Len()))
	gap := p.width - gloss.Width(title) - gloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	p.write(gloss.JoinHorizontal(gloss.Top, title, strings.Repeat(" ", gap), counter))
	for _, b := range books {
		p.book(b)
	}
}

func (p *pageBuilder) filterBar() {
	texts := lang.Active()
	genre := p.state.Filter.Genre
	if genre == "" {
		genre = texts.Page.AllGenres
	}
	line := texts.Page.FiltersLabel + "  " +
		texts.Page.CategoryFilterLabel + ": " + FilterValueStyle.Render(genre) + LabelStyle.Render(" (g)") + "   " +
		FilterValueStyle.Render(lang.SortLabel(sortName(p.state.Filter.Sort))) + LabelStyle.Render(" (s)")
	p.write(FilterBarStyle.Width(p.width).Render(line))
}

func (p *pageBuilder) results(books []library.Book) {
	texts := lang.Active()

	var heading string
	switch p.state.Heading() {
	case session.HeadingSearchResults:
		heading = lang.SearchResultsFor(p.state.Filter.Search)
	case session.HeadingBrowseAll:
		heading = texts.Page.BrowseAll
	default:
		heading = texts.Page.AllBooks
	}

	title := SectionTitleStyle.Render(heading)
	count := CountStyle.PaddingTop(1).Render(lang.BooksFound(len(books)))
	gap := p.width - gloss.Width(title) - gloss.Width(count)
	if gap < 1 {
		gap = 1
	}
	p.browseLine = p.lines
	p.write(gloss.JoinHorizontal(gloss.Top, title, strings.Repeat(" ", gap), count))

	if len(books) == 0 {
		if p.state.Filter.IsZero() {
			p.write(EmptyStyle.Width(p.width).Render(texts.Page.EmptyCatalog))
			return
		}
		p.write(gloss.JoinVertical(gloss.Center,
			EmptyStyle.Width(p.width).Render(texts.Page.NoResults),
			EmptyHintStyle.Width(p.width).Render(texts.Page.NoResultsHint),
		))
		return
	}
	for _, b := range books {
		p.book(b)
	}
}

func sortName(k library.SortKey) string {
	texts := lang.Active()
	switch k {
	case library.SortTitle:
		return texts.Page.SortTitle
	case library.SortAuthor:
		return texts.Page.SortAuthor
	case library.SortYear:
		return texts.Page.SortYear
	case library.SortReviews:
		return texts.Page.SortReviews
	default:
		return texts.Page.SortRating
	}
}
