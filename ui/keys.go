package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the page-level bindings shown in the help line.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextView    key.Binding
	PrevView    key.Binding
	JumpView    key.Binding
	Search      key.Binding
	Genre       key.Binding
	GenreBack   key.Binding
	Sort        key.Binding
	Open        key.Binding
	Add         key.Binding
	ReadingList key.Binding
	Profile     key.Binding
	Explore     key.Binding
	Language    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		JumpView: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "go to view"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Genre: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g/G", "genre"),
		),
		GenreBack: key.NewBinding(
			key.WithKeys("G"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to list"),
		),
		ReadingList: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reading list"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		Explore: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "start exploring"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "language"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Open, k.Add, k.Search, k.ReadingList, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView, k.JumpView},
		{k.Search, k.Genre, k.Sort, k.Explore},
		{k.Open, k.Add, k.ReadingList, k.Profile},
		{k.Language, k.Help, k.Quit},
	}
}
