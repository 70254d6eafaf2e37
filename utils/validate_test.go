package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edition struct {
	Code  string  `validate:"required"`
	Score float64 `validate:"gte=0,lte=5"`
	ISBN  string  `validate:"omitempty,isbn"`
}

func TestValidateStruct(t *testing.T) {
	assert.Empty(t, ValidateStruct(edition{Code: "a", Score: 5, ISBN: "978 0 441 17271 9"}))
	assert.Empty(t, ValidateStruct(edition{Code: "a"}))

	errs := ValidateStruct(edition{Score: 6, ISBN: "12345"})
	require.Len(t, errs, 3)
	assert.Equal(t, FieldError{Field: "Code", Tag: "required"}, errs[0])
	assert.Equal(t, FieldError{Field: "Score", Tag: "lte", Param: "5"}, errs[1])
	assert.Equal(t, "ISBN failed isbn", errs[2].String())
}

func TestValidateISBNLengths(t *testing.T) {
	tests := []struct {
		isbn string
		ok   bool
	}{
		{"0441172717", true},
		{"044117271X", true},
		{"9780441172719", true},
		{"978-0441172719", true},
		{"97804411727", false},
		{"978044117271X", false},
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		t.Run(tt.isbn, func(t *testing.T) {
			assert.Equal(t, tt.ok, len(ValidateStruct(edition{Code: "a", ISBN: tt.isbn})) == 0)
		})
	}
}
