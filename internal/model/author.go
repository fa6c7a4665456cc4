package model

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type Author struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"not null;index"`
	BirthDate   *time.Time `gorm:"type:date"`
	DateOfDeath *time.Time `gorm:"type:date"`
}

func (Author) TableName() string {
	return "authors"
}

// String renders the author the way the catalog pages list them,
// e.g. "3. Ursula K Le Guin (1929-10-21 - 2018-01-22)".
func (a Author) String() string {
	return fmt.Sprintf("%d. %s (%s - %s)", a.ID, a.Name, formatDate(a.BirthDate), formatDate(a.DateOfDeath))
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
