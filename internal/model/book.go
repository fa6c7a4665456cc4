package model

import (
	"fmt"
	"strconv"
)

type Book struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	ISBN            string `gorm:"column:isbn;not null;uniqueIndex"`
	Title           string `gorm:"not null;index"`
	PublicationYear *int
	AuthorID        uint   `gorm:"not null;index"`
	Author          Author `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CoverURL        string
	Description     string
}

func (Book) TableName() string {
	return "books"
}

func (b Book) String() string {
	year := ""
	if b.PublicationYear != nil {
		year = strconv.Itoa(*b.PublicationYear)
	}
	return fmt.Sprintf("%d. %s (%s)", b.ID, b.Title, year)
}
