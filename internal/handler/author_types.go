package handler

import (
	"github.com/snnyvrz/library/internal/model"
	"github.com/snnyvrz/library/internal/validation"
)

type AddAuthorForm struct {
	Name        string `form:"name" json:"name" example:"Isaac Asimov"`
	BirthDate   string `form:"birth_date" json:"birth_date" example:"1920-01-02"`
	DateOfDeath string `form:"date_of_death" json:"date_of_death" example:"1992-04-06"`
}

type Author struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	BirthDate   *model.Date `json:"birth_date,omitempty" swaggertype:"string" example:"1920-01-02"`
	DateOfDeath *model.Date `json:"date_of_death,omitempty" swaggertype:"string" example:"1992-04-06"`
}

// AddAuthorPage backs both the add_author template and its JSON view.
type AddAuthorPage struct {
	Title       string                  `json:"-"`
	Form        AddAuthorForm           `json:"form"`
	Author      *Author                 `json:"author,omitempty"`
	Message     string                  `json:"message,omitempty"`
	MessageKind string                  `json:"message_kind,omitempty"`
	Errors      []validation.FieldError `json:"errors,omitempty"`
}
