package ui

import (
	gloss "github.com/charmbracelet/lipgloss"
)

const (
	colorAccent  = gloss.Color("#fab387")
	colorBlue    = gloss.Color("#89b4fa")
	colorText    = gloss.Color("#cdd6f4")
	colorSubtext = gloss.Color("#bac2de")
	colorMuted   = gloss.Color("#585b70")
	colorLine    = gloss.Color("#363a4f")
	colorGreen   = gloss.Color("#a6e3a1")
	colorRed     = gloss.Color("#f38ba8")
	colorYellow  = gloss.Color("#f9e2af")
)

const (
	TabSpacing    = 3
	TabPaddingTop = 1
	TabPaddingBot = 0
	ListMaxWidth  = 80
	SidebarWidth  = 44
	ModalMaxWidth = 76
)

// Tab styles
var (
	ActiveTabStyle = gloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(TabPaddingTop, TabSpacing, TabPaddingBot, TabSpacing).
			Align(gloss.Center)

	InactiveTabStyle = gloss.NewStyle().
				Foreground(colorMuted).
				Padding(TabPaddingTop, TabSpacing, TabPaddingBot, TabSpacing).
				Align(gloss.Center)

	TabsRow = gloss.NewStyle().
		Align(gloss.Center)

	UnderlineRow = gloss.NewStyle().
			Foreground(colorLine).
			Align(gloss.Center)

	CounterStyle = gloss.NewStyle().
			Foreground(colorAccent).
			PaddingTop(1).
			PaddingRight(2)
)

// Book row styles
var (
	SelectedTitleStyle = gloss.NewStyle().
				Foreground(colorAccent).
				BorderLeft(true).
				BorderStyle(gloss.NormalBorder()).
				BorderForeground(colorAccent).
				PaddingLeft(1).
				Bold(true)

	SelectedDescStyle = gloss.NewStyle().
				Foreground(colorSubtext).
				BorderLeft(true).
				BorderStyle(gloss.NormalBorder()).
				BorderForeground(colorAccent).
				PaddingLeft(1)

	NormalTitleStyle = gloss.NewStyle().
				Foreground(colorText).
				PaddingLeft(2)

	NormalDescStyle = gloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)

	InListMark = gloss.NewStyle().
			Foreground(colorGreen).
			Render("♥")

	RatingStyle = gloss.NewStyle().
			Foreground(colorYellow)
)

// Page styles
var (
	PageStyle = gloss.NewStyle().
			Padding(0, 2)

	SectionTitleStyle = gloss.NewStyle().
				Foreground(colorText).
				Bold(true).
				PaddingTop(1).
				PaddingBottom(1)

	CountStyle = gloss.NewStyle().
			Foreground(colorMuted)

	HeroStyle = gloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Align(gloss.Center).
			PaddingTop(1)

	HeroAccentStyle = gloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Align(gloss.Center)

	HeroTaglineStyle = gloss.NewStyle().
				Foreground(colorSubtext).
				Align(gloss.Center).
				PaddingTop(1).
				PaddingBottom(1)

	ButtonStyle = gloss.NewStyle().
			Foreground(gloss.Color("#1e1e2e")).
			Background(colorAccent).
			Padding(0, 2).
			Bold(true)

	DisabledButtonStyle = gloss.NewStyle().
				Foreground(gloss.Color("#1e1e2e")).
				Background(colorGreen).
				Padding(0, 2)

	FilterBarStyle = gloss.NewStyle().
			Foreground(colorSubtext).
			BorderBottom(true).
			BorderStyle(gloss.NormalBorder()).
			BorderForeground(colorLine).
			PaddingBottom(0)

	FilterValueStyle = gloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	EmptyStyle = gloss.NewStyle().
			Foreground(colorMuted).
			Align(gloss.Center).
			PaddingTop(1)

	EmptyHintStyle = gloss.NewStyle().
			Foreground(colorLine).
			Align(gloss.Center)
)

// Overlay styles
var (
	ModalStyle = gloss.NewStyle().
			Border(gloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	SidebarStyle = gloss.NewStyle().
			Border(gloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 1).
			Width(SidebarWidth)

	ModalTitleStyle = gloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			PaddingBottom(1)

	LabelStyle = gloss.NewStyle().
			Foreground(colorMuted)

	ValueStyle = gloss.NewStyle().
			Foreground(colorText)

	BadgeStyle = gloss.NewStyle().
			Foreground(gloss.Color("#1e1e2e")).
			Background(colorYellow).
			Padding(0, 1)

	ErrorStyle = gloss.NewStyle().
			Foreground(colorRed)

	NoticeStyle = gloss.NewStyle().
			Foreground(gloss.Color("#1e1e2e")).
			Background(colorGreen).
			Padding(0, 2).
			MarginRight(2)
)

var (
	PromptStyle = gloss.NewStyle().
			Foreground(colorBlue)

	PromptTextStyle = gloss.NewStyle().
			Foreground(colorText)

	PromptCursorStyle = gloss.NewStyle().
				Foreground(colorText)

	InputPlaceholderStyle = gloss.NewStyle().
				Foreground(colorMuted)

	PromptBoxStyle = gloss.NewStyle().
			Border(gloss.RoundedBorder()).
			BorderForeground(colorLine).
			Padding(0, 1)

	PromptBoxFocusedStyle = PromptBoxStyle.
				BorderForeground(colorBlue)

	HelpStyle = gloss.NewStyle().
			PaddingLeft(2).
			PaddingTop(1)
)
