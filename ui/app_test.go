package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book_catalog/lang"
	"book_catalog/library"
	"book_catalog/session"
	"book_catalog/utils"
)

func testCatalog(t *testing.T) *library.Catalog {
	t.Helper()
	cat, err := library.NewCatalog([]library.Book{
		{ID: "1", Title: "The Silent Patient", Author: "Alex Michaelides", Genre: "Mystery", Rating: 4.5, Reviews: 120, Pages: 336, PublishedYear: 2019, Featured: true, Description: "A psychological thriller."},
		{ID: "2", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Rating: 4.8, Reviews: 300, Pages: 688, PublishedYear: 1965, Featured: true, ISBN: "9780441013593"},
		{ID: "3", Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Rating: 4.7, Reviews: 250, Pages: 310, PublishedYear: 1937},
	}, []string{"Mystery", "Science Fiction", "Fantasy"})
	require.NoError(t, err)
	return cat
}

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	lang.SetLocale(lang.LocaleEnglish)
	app := NewAppModel(testCatalog(t), utils.DefaultConfig())
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(AppModel)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	app, ok := model.(AppModel)
	require.True(t, ok)
	return app, cmd
}

// follow runs cmd and feeds the message it produces back into the model.
func follow(t *testing.T, m AppModel, cmd tea.Cmd) (AppModel, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

func TestAppStartsOnHome(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, session.ViewHome, app.State().View)
	assert.Equal(t, library.SortRating, app.State().Filter.Sort)
	// two featured books followed by all three results
	assert.Len(t, app.rows, 5)
	assert.Contains(t, app.View(), "Featured Books")
	assert.Contains(t, app.View(), "All Books")
}

func TestTabNavigation(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, session.ViewBrowse, app.State().View)
	assert.Contains(t, app.View(), "Browse All Books")

	app, _ = send(t, app, keyRunes("4"))
	assert.Equal(t, session.ViewReviews, app.State().View)
	assert.Contains(t, app.View(), "Top Rated Books")

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, session.ViewCategories, app.State().View)
}

func TestSearchTypingUpdatesFilter(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, keyRunes("/"))
	require.True(t, app.searching)
	for _, r := range "dune" {
		app, _ = send(t, app, keyRunes(string(r)))
	}

	assert.Equal(t, "dune", app.State().Filter.Search)
	assert.Len(t, app.State().Results(app.memo), 1)
	assert.Contains(t, app.View(), `Search Results for "dune"`)
	assert.Contains(t, app.View(), "1 book found")

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.searching)
	assert.Equal(t, "dune", app.State().Filter.Search)
}

func TestSearchWithNoMatchesShowsEmptyMessage(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, keyRunes("/"))
	for _, r := range "zzz" {
		app, _ = send(t, app, keyRunes(string(r)))
	}

	assert.Empty(t, app.State().Results(app.memo))
	assert.Contains(t, app.View(), "No books found matching your criteria")
}

func TestGenreAndSortCycling(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, keyRunes("2"))

	app, _ = send(t, app, keyRunes("g"))
	assert.Equal(t, "Mystery", app.State().Filter.Genre)
	app, _ = send(t, app, keyRunes("G"))
	assert.Equal(t, "", app.State().Filter.Genre)
	app, _ = send(t, app, keyRunes("G"))
	assert.Equal(t, "Fantasy", app.State().Filter.Genre)

	app, _ = send(t, app, keyRunes("s"))
	assert.Equal(t, library.SortTitle, app.State().Filter.Sort)
}

func TestAddFromPageNotifiesAndClearsOnMatchingTick(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, keyRunes("4"))

	app, cmd := send(t, app, keyRunes("a"))
	assert.NotNil(t, cmd, "a notice must schedule its clear")
	assert.True(t, app.State().InList("2"), "top rated book is Dune")
	assert.Equal(t, `"Dune" added to your reading list!`, app.State().Notice.Text)
	assert.Contains(t, app.View(), `"Dune" added to your reading list!`)

	stale := app.State().Notice.Token
	app, _ = send(t, app, keyRunes("a"))
	assert.Equal(t, 1, app.State().List.Len())
	assert.Equal(t, `"Dune" is already in your reading list!`, app.State().Notice.Text)

	app, _ = send(t, app, noticeExpiredMsg{token: stale})
	assert.True(t, app.State().Notice.Active())

	app, _ = send(t, app, noticeExpiredMsg{token: app.State().Notice.Token})
	assert.False(t, app.State().Notice.Active())
}

func TestCursorMovesAcrossRows(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, keyRunes("4"))

	app, _ = send(t, app, keyRunes("j"))
	app, _ = send(t, app, keyRunes("j"))
	app, _ = send(t, app, keyRunes("j"))
	assert.Equal(t, 2, app.cursor)

	app, _ = send(t, app, keyRunes("k"))
	b, ok := app.currentBook()
	require.True(t, ok)
	assert.Equal(t, "3", b.ID)
}

func TestCategoryEnterSwitchesToBrowse(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, keyRunes("3"))

	app, _ = send(t, app, keyRunes("j"))
	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	app, _ = follow(t, app, cmd)

	assert.Equal(t, session.ViewBrowse, app.State().View)
	assert.Equal(t, "Science Fiction", app.State().Filter.Genre)
	assert.Len(t, app.State().Results(app.memo), 1)
}

func TestStartExploringFromHome(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, keyRunes("e"))

	assert.Equal(t, session.ViewBrowse, app.State().View)
	assert.Equal(t, 0, app.cursor)
}

func TestDetailModalAddIsDisabledOnceListed(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, keyRunes("4"))

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, app.State().Selected)
	assert.Equal(t, "Dune", app.State().Selected.Title)
	assert.Contains(t, app.View(), "Add to Reading List")
	assert.Contains(t, app.View(), "ISBN: 9780441013593")

	app, cmd := send(t, app, keyRunes("a"))
	app, _ = follow(t, app, cmd)
	assert.True(t, app.State().InList("2"))
	assert.True(t, app.detail.InList)
	assert.Contains(t, app.View(), "Added to Reading List")

	_, cmd = send(t, app, keyRunes("a"))
	assert.Nil(t, cmd)

	app, cmd = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app, _ = follow(t, app, cmd)
	assert.Nil(t, app.State().Selected)
}

func TestSidebarRemoveAndEmptyState(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, keyRunes("4"))
	app, _ = send(t, app, keyRunes("a"))

	app, _ = send(t, app, keyRunes("r"))
	require.True(t, app.State().ListOpen)
	assert.Contains(t, app.View(), "My Reading List")
	assert.Contains(t, app.View(), "1 book in your list")

	app, cmd := send(t, app, keyRunes("d"))
	app, _ = follow(t, app, cmd)
	assert.Equal(t, 0, app.State().List.Len())
	assert.Equal(t, `"Dune" removed from your reading list!`, app.State().Notice.Text)
	assert.Contains(t, app.View(), "Your reading list is empty")
	assert.NotContains(t, app.View(), "0 books in your list")
	assert.NotContains(t, app.View(), "Export List")

	app, cmd = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app, _ = follow(t, app, cmd)
	assert.False(t, app.State().ListOpen)
}

func TestExportCopiesListToClipboard(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	defer func() { clipboardWrite = orig }()

	app := newTestApp(t)
	app, _ = send(t, app, keyRunes("4"))
	app, _ = send(t, app, keyRunes("a"))
	app, _ = send(t, app, keyRunes("r"))

	app, cmd := send(t, app, keyRunes("e"))
	app, cmd = follow(t, app, cmd)
	app, _ = follow(t, app, cmd)

	assert.Contains(t, copied, "1. Dune by Frank Herbert")
	assert.Equal(t, "Reading list copied to clipboard (1 books)", app.State().Notice.Text)
}

func TestExportFailureBecomesNotice(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	defer func() { clipboardWrite = orig }()

	msg := exportCmd([]library.Book{{ID: "1", Title: "Dune"}})()
	assert.Equal(t, "Could not copy reading list: no clipboard", exportNotice(msg.(exportedMsg)))

	msg = exportCmd(nil)()
	assert.Equal(t, "Your reading list is empty", exportNotice(msg.(exportedMsg)))
}

func TestProfileEditValidatesBeforeSaving(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, keyRunes("p"))
	require.True(t, app.State().ProfileOpen)
	assert.Contains(t, app.View(), "Sarah Johnson")

	app, _ = send(t, app, keyRunes("e"))
	require.True(t, app.profile.Editing())

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlU})
	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.True(t, app.profile.Editing())
	assert.Contains(t, app.View(), "Name cannot be empty")

	for _, r := range "Sam" {
		app, _ = send(t, app, keyRunes(string(r)))
	}
	app, cmd = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	app, _ = follow(t, app, cmd)

	assert.False(t, app.profile.Editing())
	assert.Equal(t, "Sam", app.State().Profile.Name)
	assert.Equal(t, "sarah.johnson@email.com", app.State().Profile.Email)
}

func TestBackgroundClickClosesOverlays(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, keyRunes("r"))
	require.True(t, app.State().ListOpen)

	app, _ = send(t, app, tea.MouseMsg{X: 1, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, app.State().OverlayOpen())
}

func TestLanguageToggle(t *testing.T) {
	app := newTestApp(t)
	defer lang.SetLocale(lang.LocaleEnglish)

	app, _ = send(t, app, keyRunes("L"))

	assert.Equal(t, lang.LocaleChinese, lang.CurrentLocale())
	assert.Contains(t, app.View(), lang.Active().Tabs.Home)
}

func TestQuit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := send(t, app, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
