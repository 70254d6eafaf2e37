package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"book_catalog/lang"
	"book_catalog/library"
)

// DetailModel is the book details modal. The body scrolls in a viewport
// when the terminal is too short for it.
type DetailModel struct {
	Book     library.Book
	InList   bool
	viewport viewport.Model
	width    int
	height   int
}

type detailClosedMsg struct{}

type addRequestMsg struct {
	Book library.Book
}

func NewDetailModel(book library.Book, inList bool, width, height int) DetailModel {
	m := DetailModel{Book: book, InList: inList}
	m.resize(width, height)
	return m
}

func (m DetailModel) modalWidth() int {
	w := m.width - 4
	if w > ModalMaxWidth {
		w = ModalMaxWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m *DetailModel) resize(width, height int) {
	m.width = width
	m.height = height

	contentW := m.modalWidth() - 6
	body := m.body(contentW)
	lines := strings.Count(body, "\n") + 1

	h := height - 12
	if h > lines {
		h = lines
	}
	if h < 3 {
		h = 3
	}
	m.viewport = viewport.New(contentW, h)
	m.viewport.SetContent(body)
}

func (m DetailModel) body(width int) string {
	texts := lang.Active()
	b := m.Book

	var sb strings.Builder
	sb.WriteString(LabelStyle.Render(fmt.Sprintf(texts.Detail.ByTemplate, b.Author)))
	sb.WriteString("\n")
	sb.WriteString(ratingLine(b))
	sb.WriteString("\n\n")

	badges := BadgeStyle.Render(b.Genre)
	if b.Featured {
		badges += " " + BadgeStyle.Background(colorAccent).Render(texts.Detail.Featured)
	}
	sb.WriteString(badges)
	sb.WriteString("\n\n")

	sb.WriteString(ValueStyle.Bold(true).Render(texts.Detail.Description))
	sb.WriteString("\n")
	sb.WriteString(ValueStyle.Render(wordwrap.String(b.Description, width)))
	sb.WriteString("\n\n")

	facts := []string{
		fmt.Sprintf(texts.Detail.Published, b.PublishedYear),
		fmt.Sprintf(texts.Detail.Pages, b.Pages),
	}
	if b.Language != "" {
		facts = append(facts, fmt.Sprintf(texts.Detail.Language, b.Language))
	}
	if b.ISBN != "" {
		facts = append(facts, fmt.Sprintf(texts.Detail.ISBN, b.ISBN))
	}
	for i, f := range facts {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(LabelStyle.Render(f))
	}
	return sb.String()
}

func (m DetailModel) Init() tea.Cmd { return nil }

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return detailClosedMsg{} }
		case "a", "enter":
			if m.InList {
				return m, nil
			}
			book := m.Book
			return m, func() tea.Msg { return addRequestMsg{Book: book} }
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m DetailModel) View() string {
	texts := lang.Active()

	button := ButtonStyle.Render(texts.Detail.AddToList)
	if m.InList {
		button = DisabledButtonStyle.Render(texts.Detail.AlreadyInList)
	}

	content := gloss.JoinVertical(gloss.Left,
		LabelStyle.Render(texts.Detail.Title),
		ModalTitleStyle.Render(m.Book.Title),
		m.viewport.View(),
		"",
		button,
	)
	return ModalStyle.Width(m.modalWidth()).Render(content)
}
