package session

import (
	"errors"
	"strings"

	"book_catalog/utils"
)

var (
	ErrEmptyName    = errors.New("profile name is empty")
	ErrInvalidEmail = errors.New("profile email is invalid")
)

// Profile is the mock user profile. It lives only as long as the session.
type Profile struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Bio            string
	FavoriteGenres []string
	JoinDate       string
	BooksRead      int
	ReviewsWritten int
	ReadingGoal    int
}

func DefaultProfile() Profile {
	return Profile{
		Name:           "Sarah Johnson",
		Email:          "sarah.johnson@email.com",
		Bio:            "Passionate reader with a love for mystery novels and fantasy epics. Always looking for my next great adventure between the pages.",
		FavoriteGenres: []string{"Mystery", "Fantasy", "Science Fiction"},
		JoinDate:       "March 2023",
		BooksRead:      47,
		ReviewsWritten: 23,
		ReadingGoal:    50,
	}
}

// GoalProgress is the completed share of the reading goal in [0, 1].
func (p Profile) GoalProgress() float64 {
	if p.ReadingGoal <= 0 {
		return 1
	}
	f := float64(p.BooksRead) / float64(p.ReadingGoal)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (p Profile) GoalRemaining() int {
	if r := p.ReadingGoal - p.BooksRead; r > 0 {
		return r
	}
	return 0
}

// Validate reports the first failing field as ErrEmptyName or
// ErrInvalidEmail. Surrounding spaces are ignored.
func (p Profile) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	for _, fe := range utils.ValidateStruct(p) {
		switch fe.Field {
		case "Name":
			return ErrEmptyName
		case "Email":
			return ErrInvalidEmail
		}
	}
	return nil
}
