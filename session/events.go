package session

import (
	"time"

	"book_catalog/library"
)

// Event is a user intent or timer callback. The set is closed: only types in
// this file implement it.
type Event interface{ event() }

type SearchChanged struct{ Text string }
type GenreChanged struct{ Genre string }
type SortChanged struct{ Key library.SortKey }
type Navigate struct{ View View }

// StartExploring is the hero action: go to browse and scroll to the list.
type StartExploring struct{}

// CategoryChosen sets the genre filter and switches to browse in one step.
type CategoryChosen struct{ Genre string }

type BookSelected struct{ Book library.Book }
type DetailClosed struct{}
type AddToList struct{ Book library.Book }
type RemoveFromList struct{ ID string }
type OpenReadingList struct{}
type CloseReadingList struct{}
type OpenProfile struct{}
type CloseProfile struct{}

// CloseOverlays dismisses both the sidebar and the profile.
type CloseOverlays struct{}

type ProfileSaved struct{ Profile Profile }

// Announce shows an arbitrary notice, e.g. the result of an export.
type Announce struct{ Text string }

// NoticeExpired is delivered when the clear scheduled for Token fires.
type NoticeExpired struct{ Token uint64 }

func (SearchChanged) event()    {}
func (GenreChanged) event()     {}
func (SortChanged) event()      {}
func (Navigate) event()         {}
func (StartExploring) event()   {}
func (CategoryChosen) event()   {}
func (BookSelected) event()     {}
func (DetailClosed) event()     {}
func (AddToList) event()        {}
func (RemoveFromList) event()   {}
func (OpenReadingList) event()  {}
func (CloseReadingList) event() {}
func (OpenProfile) event()      {}
func (CloseProfile) event()     {}
func (CloseOverlays) event()    {}
func (ProfileSaved) event()     {}
func (Announce) event()         {}
func (NoticeExpired) event()    {}

// Effect is work the caller performs after a state transition.
type Effect interface{ effect() }

type ScrollTo struct{ Anchor Anchor }

// ScheduleClear asks for NoticeExpired{Token} to be delivered After from now.
type ScheduleClear struct {
	Token uint64
	After time.Duration
}

func (ScrollTo) effect()      {}
func (ScheduleClear) effect() {}
