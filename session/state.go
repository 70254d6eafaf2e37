// Package session holds the browsing state of one user session and the
// reducer that moves it from one state to the next.
package session

import (
	"time"

	"book_catalog/library"
)

type View int

const (
	ViewHome View = iota
	ViewBrowse
	ViewCategories
	ViewReviews
)

var views = []View{ViewHome, ViewBrowse, ViewCategories, ViewReviews}

// Views returns the top-level views in navigation order.
func Views() []View {
	return append([]View(nil), views...)
}

func (v View) Valid() bool {
	return v >= ViewHome && v <= ViewReviews
}

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewBrowse:
		return "browse"
	case ViewCategories:
		return "categories"
	case ViewReviews:
		return "reviews"
	default:
		return "unknown"
	}
}

// Anchor is a scroll target inside the page.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBrowse
)

// Notice is the single transient message slot. Token identifies which
// scheduled clear belongs to it.
type Notice struct {
	Text  string
	Token uint64
}

func (n Notice) Active() bool { return n.Text != "" }

const DefaultNoticeDuration = 3 * time.Second

type State struct {
	Filter      library.Filter
	View        View
	Selected    *library.Book // nil when the detail modal is closed
	List        library.ReadingList
	ListOpen    bool
	ProfileOpen bool
	Profile     Profile
	Notice      Notice

	NoticeDuration time.Duration

	lastToken uint64
}

func New(sort library.SortKey, noticeDuration time.Duration) State {
	if noticeDuration <= 0 {
		noticeDuration = DefaultNoticeDuration
	}
	return State{
		Filter:         library.Filter{Sort: sort},
		View:           ViewHome,
		Profile:        DefaultProfile(),
		NoticeDuration: noticeDuration,
	}
}

func (s State) InList(id string) bool {
	return s.List.Contains(id)
}

// OverlayOpen reports whether the sidebar or the profile covers the page.
func (s State) OverlayOpen() bool {
	return s.ListOpen || s.ProfileOpen
}
