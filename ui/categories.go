package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"book_catalog/lang"
	"book_catalog/library"
)

// CategoriesModel wraps a bubbles list to display genres with their counts.
type CategoriesModel struct {
	list list.Model
}

type GenreItem struct {
	genre   string
	count   int
	samples []string
}

// sampleSize is how many titles a genre row previews.
const sampleSize = 3

func (i GenreItem) Title() string { return i.genre }
func (i GenreItem) Description() string {
	desc := fmt.Sprintf(lang.Active().Page.CategoryCount, i.count)
	if len(i.samples) > 0 {
		desc += " · " + strings.Join(i.samples, ", ")
	}
	if extra := i.count - len(i.samples); extra > 0 {
		desc += fmt.Sprintf(" +%d", extra)
	}
	return desc
}
func (i GenreItem) FilterValue() string { return i.genre }

// categoryChosenMsg is sent to the AppModel when a genre is picked.
type categoryChosenMsg string

func NewCategoriesModel(cat *library.Catalog, width, height int) CategoriesModel {
	counts := cat.GenreCounts()
	items := make([]list.Item, len(counts))
	for i, c := range counts {
		item := GenreItem{genre: c.Genre, count: c.Count}
		for _, b := range cat.ByGenre(c.Genre) {
			if len(item.samples) == sampleSize {
				break
			}
			item.samples = append(item.samples, b.Title)
		}
		items[i] = item
	}

	l := list.New(items, &BookDelegate{}, width, height)
	listSettings(&l)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.Styles.StatusBar = gloss.NewStyle().
		Foreground(colorMuted).
		PaddingBottom(1).
		PaddingLeft(2)

	applyCategoryStrings(&l)
	return CategoriesModel{list: l}
}

func applyCategoryStrings(l *list.Model) {
	texts := lang.Active()
	l.Title = texts.Page.CategoriesTitle
	l.SetStatusBarItemName(texts.Page.CategoriesSingular, texts.Page.CategoriesPlural)
}

func (m *CategoriesModel) ApplyLanguage() {
	applyCategoryStrings(&m.list)
}

func (m *CategoriesModel) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the genre under the cursor.
func (m CategoriesModel) Selected() (string, bool) {
	item, ok := m.list.SelectedItem().(GenreItem)
	if !ok {
		return "", false
	}
	return item.genre, true
}

func (m CategoriesModel) Update(msg tea.Msg) (CategoriesModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if genre, ok := m.Selected(); ok {
			return m, func() tea.Msg { return categoryChosenMsg(genre) }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m CategoriesModel) View() string {
	return SectionTitleStyle.PaddingLeft(2).Render(lang.Active().Page.CategoriesTitle) + "\n" +
		gloss.NewStyle().PaddingLeft(2).Render(m.list.View())
}
