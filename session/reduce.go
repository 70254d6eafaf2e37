package session

import (
	"book_catalog/lang"
	"book_catalog/library"
)

// Reduce applies one event and returns the next state plus the effects the
// caller must run. It never mutates s.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case SearchChanged:
		s.Filter.Search = e.Text
	case GenreChanged:
		s.Filter.Genre = e.Genre
	case SortChanged:
		s.Filter.Sort = e.Key
	case Navigate:
		if !e.View.Valid() {
			return s, nil
		}
		s.View = e.View
		return s, []Effect{ScrollTo{Anchor: AnchorTop}}
	case StartExploring:
		s.View = ViewBrowse
		return s, []Effect{ScrollTo{Anchor: AnchorBrowse}}
	case CategoryChosen:
		s.Filter.Genre = e.Genre
		s.View = ViewBrowse
		return s, []Effect{ScrollTo{Anchor: AnchorTop}}
	case BookSelected:
		b := e.Book
		s.Selected = &b
	case DetailClosed:
		s.Selected = nil
	case AddToList:
		var outcome library.Outcome
		s.List, outcome = s.List.Add(e.Book)
		if outcome == library.OutcomeDuplicate {
			return s.notify(lang.NoticeDuplicate(e.Book.Title))
		}
		return s.notify(lang.NoticeAdded(e.Book.Title))
	case RemoveFromList:
		var (
			outcome library.Outcome
			removed library.Book
		)
		s.List, outcome, removed = s.List.Remove(e.ID)
		if outcome == library.OutcomeRemoved {
			return s.notify(lang.NoticeRemoved(removed.Title))
		}
	case OpenReadingList:
		s.ListOpen = true
	case CloseReadingList:
		s.ListOpen = false
	case OpenProfile:
		s.ProfileOpen = true
	case CloseProfile:
		s.ProfileOpen = false
	case CloseOverlays:
		s.ListOpen = false
		s.ProfileOpen = false
	case ProfileSaved:
		s.Profile = e.Profile
	case Announce:
		if e.Text != "" {
			return s.notify(e.Text)
		}
	case NoticeExpired:
		if s.Notice.Token == e.Token {
			s.Notice = Notice{}
		}
	}
	return s, nil
}

// notify replaces the current notice. The new token makes any clear still
// pending for the previous notice a no-op.
func (s State) notify(text string) (State, []Effect) {
	s.lastToken++
	s.Notice = Notice{Text: text, Token: s.lastToken}
	return s, []Effect{ScheduleClear{Token: s.lastToken, After: s.NoticeDuration}}
}
