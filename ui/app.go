package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"book_catalog/lang"
	"book_catalog/library"
	"book_catalog/session"
	"book_catalog/utils"
)

type AppModel struct {
	catalog *library.Catalog
	memo    *library.Memo
	state   session.State

	keys      KeyMap
	help      help.Model
	search    textinput.Model
	searching bool

	viewport   viewport.Model
	rows       []pageRow
	browseLine int
	cursor     int

	categories CategoriesModel
	detail     DetailModel
	sidebar    SidebarModel
	profile    ProfileModel

	width  int
	height int
}

// noticeExpiredMsg is the tick scheduled for a notice token.
type noticeExpiredMsg struct {
	token uint64
}

func NewAppModel(cat *library.Catalog, cfg utils.Config) AppModel {
	sortKey, ok := library.ParseSortKey(cfg.UI.DefaultSort)
	if !ok {
		utils.Warn("unknown default sort, using rating", "sort", cfg.UI.DefaultSort)
	}
	state := session.New(sortKey, time.Duration(cfg.UI.NoticeSeconds)*time.Second)

	ti := textinput.New()
	ti.PromptStyle = PromptStyle
	ti.PlaceholderStyle = InputPlaceholderStyle
	ti.TextStyle = PromptTextStyle
	ti.Cursor.Style = PromptCursorStyle
	ti.CharLimit = 60
	ti.Width = 40

	m := AppModel{
		catalog:    cat,
		memo:       library.NewMemo(cat.Books()),
		state:      state,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		search:     ti,
		viewport:   viewport.New(0, 0),
		categories: NewCategoriesModel(cat, 0, 0),
		sidebar:    NewSidebarModel(0),
		profile:    NewProfileModel(state.Profile, 0),
	}
	m.applyLanguage()
	m.refresh()
	return m
}

func (m *AppModel) applyLanguage() {
	texts := lang.Active()
	m.search.Prompt = texts.Page.SearchPrompt
	m.search.Placeholder = texts.Page.SearchPlaceholder
	m.categories.ApplyLanguage()
}

// State exposes the session state for callers that embed the model.
func (m AppModel) State() session.State { return m.state }

func (m AppModel) Init() tea.Cmd { return nil }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case noticeExpiredMsg:
		return m.dispatch(session.NoticeExpired{Token: msg.token})
	case categoryChosenMsg:
		return m.dispatch(session.CategoryChosen{Genre: string(msg)})
	case detailClosedMsg:
		return m.dispatch(session.DetailClosed{})
	case addRequestMsg:
		return m.dispatch(session.AddToList{Book: msg.Book})
	case removeRequestMsg:
		return m.dispatch(session.RemoveFromList{ID: msg.ID})
	case sidebarClosedMsg:
		return m.dispatch(session.CloseReadingList{})
	case exportRequestMsg:
		return m, exportCmd(m.state.List.Books())
	case exportedMsg:
		if msg.Err != nil {
			utils.Warn("reading list export failed", "err", msg.Err)
		} else {
			utils.Info("reading list exported", "count", msg.Count)
		}
		return m.dispatch(session.Announce{Text: exportNotice(msg)})
	case profileClosedMsg:
		return m.dispatch(session.CloseProfile{})
	case profileSavedMsg:
		return m.dispatch(session.ProfileSaved{Profile: msg.Profile})
	}

	// blink and other component ticks
	var cmd tea.Cmd
	switch {
	case m.state.ProfileOpen:
		m.profile, cmd = m.profile.Update(msg)
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// dispatch runs one event through the reducer, then performs its effects.
func (m AppModel) dispatch(ev session.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	next, effects := session.Reduce(m.state, ev)
	m.state = next
	logTransition(prev, next)

	if prev.Filter != next.Filter {
		m.cursor = 0
	}
	m.syncOverlays(prev)
	m.refresh()

	var cmds []tea.Cmd
	for _, fx := range effects {
		switch e := fx.(type) {
		case session.ScrollTo:
			m.scrollTo(e.Anchor)
		case session.ScheduleClear:
			cmds = append(cmds, clearNoticeCmd(e))
		}
	}
	return m, tea.Batch(cmds...)
}

func clearNoticeCmd(e session.ScheduleClear) tea.Cmd {
	token := e.Token
	return tea.Tick(e.After, func(time.Time) tea.Msg {
		return noticeExpiredMsg{token: token}
	})
}

func logTransition(prev, next session.State) {
	if prev.View != next.View {
		utils.Debug("navigate", "from", prev.View, "to", next.View)
	}
	if prev.Filter != next.Filter {
		utils.Debug("filter", "search", next.Filter.Search, "genre", next.Filter.Genre, "sort", next.Filter.Sort)
	}
	if prev.List.Len() != next.List.Len() {
		utils.Info("reading list changed", "size", next.List.Len())
	}
	if next.Notice.Active() && next.Notice.Token != prev.Notice.Token {
		utils.Debug("notice", "token", next.Notice.Token, "text", next.Notice.Text)
	}
}

// syncOverlays rebuilds the overlay models the new state opened and keeps
// the open ones in step with the reading list.
func (m *AppModel) syncOverlays(prev session.State) {
	if sel := m.state.Selected; sel != nil {
		if prev.Selected == nil || prev.Selected.ID != sel.ID {
			m.detail = NewDetailModel(*sel, m.state.InList(sel.ID), m.width, m.bodyHeight())
		}
		m.detail.InList = m.state.InList(sel.ID)
	}
	if m.state.ProfileOpen && !prev.ProfileOpen {
		m.profile = NewProfileModel(m.state.Profile, m.width)
	}
	m.profile.Profile = m.state.Profile
	m.profile.ListCount = m.state.List.Len()
	m.sidebar.SetBooks(m.state.List.Books())
}

func (m *AppModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	body := m.bodyHeight()
	m.viewport.Width = width
	m.viewport.Height = body
	m.categories.SetSize(contentWidth(width), body-2)
	m.sidebar.SetHeight(body)
	m.profile.SetWidth(width)
	if m.state.Selected != nil {
		m.detail, _ = m.detail.Update(tea.WindowSizeMsg{Width: width, Height: body})
	}
	m.refresh()
}

func (m AppModel) bodyHeight() int {
	h := m.height - gloss.Height(m.headerView()) - gloss.Height(m.helpView())
	if h < 1 {
		h = 1
	}
	return h
}

// refresh re-renders the scrolling page from the current state.
func (m *AppModel) refresh() {
	if m.state.View == session.ViewCategories {
		m.rows = nil
		return
	}
	pg := renderPage(m.state, m.catalog, m.memo, m.width, m.cursor)
	if n := len(pg.rows); m.cursor >= n && n > 0 {
		m.cursor = n - 1
		pg = renderPage(m.state, m.catalog, m.memo, m.width, m.cursor)
	}
	m.rows = pg.rows
	m.browseLine = pg.browseLine
	m.viewport.SetContent(pg.content)
}

func (m *AppModel) scrollTo(a session.Anchor) {
	switch a {
	case session.AnchorBrowse:
		m.viewport.SetYOffset(m.browseLine)
		m.cursor = 0
		for i, r := range m.rows {
			if r.line >= m.browseLine {
				m.cursor = i
				break
			}
		}
		m.refresh()
	default:
		m.cursor = 0
		m.refresh()
		m.viewport.GotoTop()
	}
}

func (m *AppModel) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.refresh()

	// keep the two-line row plus one line of context in view
	line := m.rows[m.cursor].line
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if bottom := line + 3; bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
	if m.cursor == 0 {
		m.viewport.GotoTop()
	}
}

func (m AppModel) currentBook() (library.Book, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return library.Book{}, false
	}
	return m.rows[m.cursor].book, true
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case m.state.Selected != nil:
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	case m.state.ProfileOpen:
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	case m.state.ListOpen:
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	case m.searching:
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextView):
		return m.dispatch(session.Navigate{View: m.stepView(1)})
	case key.Matches(msg, m.keys.PrevView):
		return m.dispatch(session.Navigate{View: m.stepView(-1)})
	case key.Matches(msg, m.keys.JumpView):
		return m.dispatch(session.Navigate{View: session.View(msg.Runes[0] - '1')})
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd = m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ReadingList):
		return m.dispatch(session.OpenReadingList{})
	case key.Matches(msg, m.keys.Profile):
		return m.dispatch(session.OpenProfile{})
	case key.Matches(msg, m.keys.Language):
		m.changeLanguage(1)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	if m.state.View == session.ViewCategories {
		m.categories, cmd = m.categories.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if b, ok := m.currentBook(); ok {
			return m.dispatch(session.BookSelected{Book: b})
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		if b, ok := m.currentBook(); ok {
			return m.dispatch(session.AddToList{Book: b})
		}
		return m, nil
	case key.Matches(msg, m.keys.Explore):
		if m.state.View == session.ViewHome {
			return m.dispatch(session.StartExploring{})
		}
		return m, nil
	case m.state.ShowsResults() && key.Matches(msg, m.keys.Genre):
		return m.dispatch(session.GenreChanged{Genre: m.stepGenre(1)})
	case m.state.ShowsResults() && key.Matches(msg, m.keys.GenreBack):
		return m.dispatch(session.GenreChanged{Genre: m.stepGenre(-1)})
	case m.state.ShowsResults() && key.Matches(msg, m.keys.Sort):
		return m.dispatch(session.SortChanged{Key: m.stepSort(1)})
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSearchKey feeds the focused search box; every edit is a
// SearchChanged event.
func (m AppModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		if msg.String() == "enter" && m.state.View != session.ViewHome && m.state.View != session.ViewBrowse {
			return m.dispatch(session.Navigate{View: session.ViewBrowse})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if text := m.search.Value(); text != m.state.Filter.Search {
		next, dcmd := m.dispatch(session.SearchChanged{Text: text})
		return next, tea.Batch(cmd, dcmd)
	}
	return m, cmd
}

// handleMouse treats a click outside an open sidebar or profile as a
// background click that dismisses both.
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		if !m.state.OverlayOpen() && m.state.Selected == nil && m.state.View != session.ViewCategories {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if !m.state.OverlayOpen() {
		return m, nil
	}
	if m.state.ListOpen && msg.X < m.width-gloss.Width(m.sidebar.View()) {
		return m.dispatch(session.CloseOverlays{})
	}
	if m.state.ProfileOpen {
		w := gloss.Width(m.profile.View())
		left := (m.width - w) / 2
		if msg.X < left || msg.X >= left+w {
			return m.dispatch(session.CloseOverlays{})
		}
	}
	return m, nil
}

func (m AppModel) stepView(delta int) session.View {
	views := session.Views()
	idx := 0
	for i, v := range views {
		if v == m.state.View {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(views)) % len(views)
	return views[idx]
}

// stepGenre cycles through "all genres" followed by every catalog genre.
func (m AppModel) stepGenre(delta int) string {
	options := append([]string{""}, m.catalog.Genres()...)
	idx := 0
	for i, g := range options {
		if g == m.state.Filter.Genre {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func (m AppModel) stepSort(delta int) library.SortKey {
	keys := library.SortKeys()
	idx := 0
	for i, k := range keys {
		if k == m.state.Filter.Sort {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(keys)) % len(keys)
	return keys[idx]
}

func (m *AppModel) changeLanguage(delta int) {
	locales := lang.AvailableLocales()
	if len(locales) == 0 {
		return
	}
	current := lang.CurrentLocale()
	idx := 0
	for i, loc := range locales {
		if loc == current {
			idx = i
			break
		}
	}
	next := locales[(idx+delta+len(locales))%len(locales)]
	if next == current || !lang.SetLocale(next) {
		return
	}
	utils.Info("language changed", "locale", next)
	m.applyLanguage()
	m.resize(m.width, m.height)
}

func (m AppModel) headerView() string {
	texts := lang.Active()
	names := []string{texts.Tabs.Home, texts.Tabs.Browse, texts.Tabs.Categories, texts.Tabs.Reviews}

	var renderedTabs []string
	for i, name := range names {
		if session.View(i) == m.state.View {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(name))
		} else {
			renderedTabs = append(renderedTabs, InactiveTabStyle.Render(name))
		}
	}
	counter := CounterStyle.Render(fmt.Sprintf("♥ %d", m.state.List.Len()))
	tabs := gloss.JoinHorizontal(gloss.Top, renderedTabs...)
	tabsRow := TabsRow.Width(m.width - gloss.Width(counter)).Render(tabs)
	tabsRow = gloss.JoinHorizontal(gloss.Top, tabsRow, counter)

	maxUnderline := texts.Layout.UnderlineLength
	if maxUnderline <= 0 {
		maxUnderline = 48
	}
	lineWidth := m.width
	if lineWidth > maxUnderline {
		lineWidth = maxUnderline
	}
	underlineRow := UnderlineRow.Width(m.width).Render(strings.Repeat("─", lineWidth))

	box := PromptBoxStyle
	if m.searching {
		box = PromptBoxFocusedStyle
	}
	searchRow := gloss.PlaceHorizontal(m.width, gloss.Center, box.Render(m.search.View()))

	noticeRow := ""
	if m.state.Notice.Active() {
		noticeRow = gloss.PlaceHorizontal(m.width, gloss.Right, NoticeStyle.Render(m.state.Notice.Text))
	}

	return gloss.JoinVertical(gloss.Left, tabsRow, underlineRow, searchRow, noticeRow)
}

func (m AppModel) helpView() string {
	return HelpStyle.Render(m.help.View(m.keys))
}

func (m AppModel) pageView() string {
	if m.state.View == session.ViewCategories {
		return m.categories.View()
	}
	return m.viewport.View()
}

func (m AppModel) View() string {
	header := m.headerView()
	body := m.pageView()
	bodyH := m.bodyHeight()

	switch {
	case m.state.Selected != nil:
		body = gloss.Place(m.width, bodyH, gloss.Center, gloss.Center, m.detail.View())
	case m.state.ProfileOpen:
		body = gloss.Place(m.width, bodyH, gloss.Center, gloss.Center, m.profile.View())
	case m.state.ListOpen:
		side := m.sidebar.View()
		baseW := m.width - gloss.Width(side)
		if baseW < 0 {
			baseW = 0
		}
		base := gloss.NewStyle().Width(baseW).MaxWidth(baseW).Height(bodyH).MaxHeight(bodyH).Render(body)
		body = gloss.JoinHorizontal(gloss.Top, base, side) // no dimming
	}

	return gloss.JoinVertical(gloss.Left, header, body, m.helpView())
}

// RunApp starts the program on the alternate screen and blocks until quit.
func RunApp(cat *library.Catalog) error {
	app := NewAppModel(cat, utils.AppConfig)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
