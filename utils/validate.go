package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	isbn10 = regexp.MustCompile(`^\d{9}[\dX]$`)
	isbn13 = regexp.MustCompile(`^\d{13}$`)
)

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn", validateISBN)
}

// validateISBN accepts 10 or 13 digit ISBNs, ignoring dashes and spaces.
func validateISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")

	switch len(isbn) {
	case 10:
		return isbn10.MatchString(isbn)
	case 13:
		return isbn13.MatchString(isbn)
	}
	return false
}

// FieldError is one failed rule on one struct field.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) String() string {
	if e.Param != "" {
		return e.Field + " failed " + e.Tag + "=" + e.Param
	}
	return e.Field + " failed " + e.Tag
}

// ValidateStruct checks s against its validate tags. It returns nil when
// every rule holds.
func ValidateStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "?", Tag: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.StructField(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
