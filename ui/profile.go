package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"book_catalog/lang"
	"book_catalog/session"
)

const (
	fieldName = iota
	fieldEmail
	fieldBio
	fieldCount
)

// ProfileModel shows the mock profile and its edit form.
type ProfileModel struct {
	Profile   session.Profile
	ListCount int
	editing   bool
	focus     int
	name      textinput.Model
	email     textinput.Model
	bio       textarea.Model
	bar       progress.Model
	err       error
	width     int
}

type profileClosedMsg struct{}

type profileSavedMsg struct {
	Profile session.Profile
}

func newProfileInput() textinput.Model {
	ti := textinput.New()
	ti.PromptStyle = PromptStyle
	ti.TextStyle = PromptTextStyle
	ti.PlaceholderStyle = InputPlaceholderStyle
	ti.Cursor.Style = PromptCursorStyle
	ti.Prompt = ""
	ti.CharLimit = 80
	return ti
}

func NewProfileModel(p session.Profile, width int) ProfileModel {
	bio := textarea.New()
	bio.ShowLineNumbers = false
	bio.CharLimit = 500
	bio.SetHeight(4)

	m := ProfileModel{
		Profile: p,
		name:    newProfileInput(),
		email:   newProfileInput(),
		bio:     bio,
		bar:     progress.New(progress.WithGradient("#fab387", "#f9e2af"), progress.WithoutPercentage()),
	}
	m.SetWidth(width)
	return m
}

func (m ProfileModel) modalWidth() int {
	w := m.width - 4
	if w > ModalMaxWidth {
		w = ModalMaxWidth
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m *ProfileModel) SetWidth(width int) {
	m.width = width
	inner := m.modalWidth() - 6
	m.name.Width = inner - 2
	m.email.Width = inner - 2
	m.bio.SetWidth(inner)
	m.bar.Width = inner
}

// Editing reports whether the edit form has focus.
func (m ProfileModel) Editing() bool { return m.editing }

func (m *ProfileModel) beginEdit() tea.Cmd {
	m.editing = true
	m.err = nil
	m.name.SetValue(m.Profile.Name)
	m.email.SetValue(m.Profile.Email)
	m.bio.SetValue(m.Profile.Bio)
	m.focus = fieldName
	return m.applyFocus()
}

func (m *ProfileModel) applyFocus() tea.Cmd {
	m.name.Blur()
	m.email.Blur()
	m.bio.Blur()
	switch m.focus {
	case fieldEmail:
		return m.email.Focus()
	case fieldBio:
		return m.bio.Focus()
	default:
		return m.name.Focus()
	}
}

// draft is the profile as currently typed into the form.
func (m ProfileModel) draft() session.Profile {
	p := m.Profile
	p.FavoriteGenres = append([]string(nil), m.Profile.FavoriteGenres...)
	p.Name = strings.TrimSpace(m.name.Value())
	p.Email = strings.TrimSpace(m.email.Value())
	p.Bio = strings.TrimSpace(m.bio.Value())
	return p
}

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if !m.editing {
		switch keyMsg.String() {
		case "esc", "p", "q":
			return m, func() tea.Msg { return profileClosedMsg{} }
		case "e", "enter":
			cmd := m.beginEdit()
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.editing = false
		m.err = nil
		return m, nil
	case "tab":
		m.focus = (m.focus + 1) % fieldCount
		cmd := m.applyFocus()
		return m, cmd
	case "shift+tab":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		cmd := m.applyFocus()
		return m, cmd
	case "ctrl+s":
		p := m.draft()
		if err := p.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.editing = false
		m.err = nil
		m.Profile = p
		return m, func() tea.Msg { return profileSavedMsg{Profile: p} }
	}
	return m.updateFocused(msg)
}

func (m ProfileModel) updateFocused(msg tea.Msg) (ProfileModel, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.focus {
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldBio:
		m.bio, cmd = m.bio.Update(msg)
	default:
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

func (m ProfileModel) errorText() string {
	texts := lang.Active()
	switch {
	case m.err == nil:
		return ""
	case errors.Is(m.err, session.ErrEmptyName):
		return texts.Profile.InvalidName
	case errors.Is(m.err, session.ErrInvalidEmail):
		return texts.Profile.InvalidEmail
	default:
		return m.err.Error()
	}
}

func (m ProfileModel) View() string {
	if m.editing {
		return ModalStyle.Width(m.modalWidth()).Render(m.formView())
	}
	return ModalStyle.Width(m.modalWidth()).Render(m.cardView())
}

func (m ProfileModel) cardView() string {
	texts := lang.Active()
	p := m.Profile
	inner := m.modalWidth() - 6

	header := gloss.JoinVertical(gloss.Left,
		LabelStyle.Render(texts.Profile.Title),
		ModalTitleStyle.PaddingBottom(0).Render(p.Name),
		LabelStyle.Render(p.Email),
		LabelStyle.Render(fmt.Sprintf(texts.Profile.MemberSince, p.JoinDate)),
	)

	stat := func(n int, label string) string {
		return gloss.JoinVertical(gloss.Center,
			FilterValueStyle.Render(fmt.Sprint(n)),
			LabelStyle.Render(label),
		)
	}
	gap := "    "
	stats := gloss.JoinHorizontal(gloss.Top,
		stat(p.BooksRead, texts.Profile.BooksRead), gap,
		stat(m.ListCount, texts.Profile.ReadingList), gap,
		stat(p.ReviewsWritten, texts.Profile.Reviews),
	)

	genres := make([]string, len(p.FavoriteGenres))
	for i, g := range p.FavoriteGenres {
		genres[i] = BadgeStyle.Render(g)
	}

	goal := gloss.JoinVertical(gloss.Left,
		ValueStyle.Bold(true).Render(texts.Profile.GoalTitle)+"  "+
			LabelStyle.Render(fmt.Sprintf(texts.Profile.GoalProgress, p.BooksRead, p.ReadingGoal)),
		m.bar.ViewAs(p.GoalProgress()),
		LabelStyle.Render(fmt.Sprintf(texts.Profile.GoalRemaining, p.GoalRemaining())),
	)

	return gloss.JoinVertical(gloss.Left,
		header,
		"",
		stats,
		"",
		ValueStyle.Bold(true).Render(texts.Profile.About),
		ValueStyle.Render(wordwrap.String(p.Bio, inner)),
		"",
		ValueStyle.Bold(true).Render(texts.Profile.FavoriteGenres),
		strings.Join(genres, " "),
		"",
		goal,
		"",
		ButtonStyle.Render("e "+texts.Profile.Edit),
	)
}

func (m ProfileModel) formView() string {
	texts := lang.Active()

	box := func(field int, view string) string {
		if m.focus == field {
			return PromptBoxFocusedStyle.Render(view)
		}
		return PromptBoxStyle.Render(view)
	}

	rows := []string{
		ModalTitleStyle.Render(texts.Profile.Edit),
		LabelStyle.Render(texts.Profile.NameLabel),
		box(fieldName, m.name.View()),
		LabelStyle.Render(texts.Profile.EmailLabel),
		box(fieldEmail, m.email.View()),
		LabelStyle.Render(texts.Profile.BioLabel),
		box(fieldBio, m.bio.View()),
	}
	if e := m.errorText(); e != "" {
		rows = append(rows, ErrorStyle.Render(e))
	}
	rows = append(rows, "",
		ButtonStyle.Render("ctrl+s "+texts.Profile.Save)+"  "+
			DisabledButtonStyle.Background(colorMuted).Render("esc "+texts.Profile.Cancel),
	)
	return gloss.JoinVertical(gloss.Left, rows...)
}
