package ui

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"book_catalog/lang"
	"book_catalog/library"
)

var errEmptyList = errors.New("reading list is empty")

// SidebarModel shows the reading list on the right edge of the screen.
type SidebarModel struct {
	list   list.Model
	books  []library.Book
	height int
}

type sidebarClosedMsg struct{}

type removeRequestMsg struct {
	ID string
}

type exportRequestMsg struct{}

type exportedMsg struct {
	Count int
	Err   error
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func NewSidebarModel(height int) SidebarModel {
	l := list.New(nil, &BookDelegate{}, SidebarWidth-4, 0)
	listSettings(&l)
	l.SetShowPagination(true)
	m := SidebarModel{list: l}
	m.SetHeight(height)
	return m
}

func (m *SidebarModel) SetHeight(height int) {
	m.height = height
	h := height - 10
	if h < 3 {
		h = 3
	}
	m.list.SetSize(SidebarWidth-4, h)
}

// SetBooks replaces the listed books, keeping the cursor in range.
func (m *SidebarModel) SetBooks(books []library.Book) {
	idx := m.list.Index()
	m.books = books
	m.list.SetItems(bookItems(books))
	if idx >= len(books) {
		idx = len(books) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "r":
			return m, func() tea.Msg { return sidebarClosedMsg{} }
		case "d", "x", "delete", "backspace":
			if item, ok := m.list.SelectedItem().(BookItem); ok {
				id := item.ID
				return m, func() tea.Msg { return removeRequestMsg{ID: id} }
			}
			return m, nil
		case "e":
			return m, func() tea.Msg { return exportRequestMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m SidebarModel) View() string {
	texts := lang.Active()

	var body string
	if len(m.books) == 0 {
		body = gloss.JoinVertical(gloss.Center,
			EmptyStyle.Width(SidebarWidth-4).Render(texts.List.Empty),
			EmptyHintStyle.Width(SidebarWidth-4).Render(texts.List.EmptyHint),
		)
	} else {
		body = m.list.View()
	}

	parts := []string{ModalTitleStyle.Render(texts.List.Title), body}
	if len(m.books) > 0 {
		parts = append(parts, "",
			CountStyle.Render(lang.BooksInList(len(m.books)))+"\n\n"+ButtonStyle.Render("e "+texts.List.Export))
	}

	return SidebarStyle.Height(m.height - 2).Render(gloss.JoinVertical(gloss.Left, parts...))
}

// exportCmd copies the list to the system clipboard off the UI loop.
func exportCmd(books []library.Book) tea.Cmd {
	return func() tea.Msg {
		if len(books) == 0 {
			return exportedMsg{Err: errEmptyList}
		}
		text := library.FormatReadingList(lang.Active().List.ExportHeader, books)
		if err := clipboardWrite(text); err != nil {
			return exportedMsg{Count: len(books), Err: err}
		}
		return exportedMsg{Count: len(books)}
	}
}

// exportNotice turns an export result into notice text.
func exportNotice(msg exportedMsg) string {
	switch {
	case errors.Is(msg.Err, errEmptyList):
		return lang.Active().Notice.ExportEmpty
	case msg.Err != nil:
		return lang.NoticeExportFailed(msg.Err)
	default:
		return lang.NoticeExported(msg.Count)
	}
}
