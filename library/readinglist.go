package library

// Outcome describes what a reading-list operation did, so the caller can
// pick the matching notice.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAdded
	OutcomeDuplicate
	OutcomeRemoved
)

// ReadingList is an insertion-ordered set of books keyed by ID. Add and
// Remove return a new list and never touch the receiver's backing array,
// so older values stay valid.
type ReadingList struct {
	books []Book
}

func (l ReadingList) Add(b Book) (ReadingList, Outcome) {
	if l.Contains(b.ID) {
		return l, OutcomeDuplicate
	}
	next := make([]Book, len(l.books), len(l.books)+1)
	copy(next, l.books)
	return ReadingList{books: append(next, b)}, OutcomeAdded
}

// Remove drops the book with the given ID. Removing an absent ID is not an
// error: the list comes back unchanged with OutcomeNone.
func (l ReadingList) Remove(id string) (ReadingList, Outcome, Book) {
	for i, b := range l.books {
		if b.ID != id {
			continue
		}
		next := make([]Book, 0, len(l.books)-1)
		next = append(next, l.books[:i]...)
		next = append(next, l.books[i+1:]...)
		return ReadingList{books: next}, OutcomeRemoved, b
	}
	return l, OutcomeNone, Book{}
}

func (l ReadingList) Contains(id string) bool {
	for _, b := range l.books {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (l ReadingList) Len() int { return len(l.books) }

func (l ReadingList) Books() []Book {
	return append([]Book{}, l.books...)
}
