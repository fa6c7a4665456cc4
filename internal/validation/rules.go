package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/snnyvrz/library/internal/model"
)

const MinPublicationYear = 1000

// ValidationError reports the single rule a submitted field violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fail(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func ValidateAuthorName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fail("name", "name is required and may contain only letters and spaces")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", fail("name", "name is required and may contain only letters and spaces")
		}
	}
	return name, nil
}

// ValidateDate parses an optional YYYY-MM-DD value. An empty input is not an
// error and yields a nil date.
func ValidateDate(raw, label string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return nil, fail(fieldName(label), fmt.Sprintf("invalid %s format", label))
	}
	return &t, nil
}

func ValidateAuthorDates(birth, death *time.Time) error {
	if birth == nil || death == nil {
		return nil
	}
	if !death.After(*birth) {
		return fail("date_of_death", "date of death must be after birth date")
	}
	return nil
}

func ValidateIsbn(raw string) (string, error) {
	isbn := strings.TrimSpace(raw)
	if err := validate.Var(isbn, "required,number,len=10|len=13"); err != nil {
		return "", fail("isbn", "ISBN must be exactly 10 or 13 digits")
	}
	return isbn, nil
}

func ValidateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" || strings.IndexFunc(title, unicode.IsLetter) < 0 {
		return "", fail("title", "title is required and must contain at least one letter")
	}
	return title, nil
}

func ValidatePublicationYear(raw string, currentYear int) (*int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	msg := fmt.Sprintf("publication year must be a number between %d and %d", MinPublicationYear, currentYear)
	if err := validate.Var(s, "number"); err != nil {
		return nil, fail("publication_year", msg)
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < MinPublicationYear || year > currentYear {
		return nil, fail("publication_year", msg)
	}
	return &year, nil
}

// ValidateAuthorID only checks the shape of the picker value; whether the
// author exists is left to the foreign key.
func ValidateAuthorID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fail("author_id", "please select an author")
	}
	return uint(id), nil
}

func fieldName(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}
