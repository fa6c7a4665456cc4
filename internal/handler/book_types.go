package handler

import (
	"encoding/json"

	"github.com/snnyvrz/library/internal/validation"
)

// FormNumber is a numeric field kept as submitted. Forms send it as text;
// JSON clients may send either a number or a string.
type FormNumber string

func (n *FormNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = FormNumber(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = FormNumber(num.String())
	return nil
}

type AddBookForm struct {
	ISBN            string     `form:"isbn" json:"isbn" example:"9780553293357"`
	Title           string     `form:"title" json:"title" example:"Foundation"`
	PublicationYear FormNumber `form:"publication_year" json:"publication_year" swaggertype:"string" example:"1951"`
	AuthorID        FormNumber `form:"author_id" json:"author_id" swaggertype:"string" example:"1"`
	CoverURL        string     `form:"cover_url" json:"cover_url"`
	Description     string     `form:"description" json:"description"`
}

type Book struct {
	ID              uint   `json:"id"`
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty" example:"1951"`
	AuthorID        uint   `json:"author_id"`
	AuthorName      string `json:"author_name,omitempty"`
	CoverURL        string `json:"cover_url,omitempty"`
	Description     string `json:"description,omitempty"`
}

type AddBookPage struct {
	Title       string                  `json:"-"`
	Form        AddBookForm             `json:"form"`
	Authors     []Author                `json:"authors"`
	Book        *Book                   `json:"book,omitempty"`
	Message     string                  `json:"message,omitempty"`
	MessageKind string                  `json:"message_kind,omitempty"`
	Errors      []validation.FieldError `json:"errors,omitempty"`
}

type CatalogPage struct {
	Title       string `json:"-"`
	Books       []Book `json:"books"`
	Sort        string `json:"sort" enums:"author,title"`
	Search      string `json:"search"`
	Message     string `json:"message,omitempty"`
	MessageKind string `json:"message_kind,omitempty"`
}
