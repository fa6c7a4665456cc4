package app

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/snnyvrz/library/internal/service"
	"go.uber.org/zap"
)

type sampleBook struct {
	isbn  string
	title string
	year  int
}

type sampleAuthor struct {
	name  string
	birth string
	death string
	books []sampleBook
}

var samples = []sampleAuthor{
	{
		name: "Isaac Asimov", birth: "1920-01-02", death: "1992-04-06",
		books: []sampleBook{
			{isbn: "9780553293357", title: "Foundation", year: 1951},
			{isbn: "9780553382563", title: "I Robot", year: 1950},
		},
	},
	{
		name: "Jorge Luis Borges", birth: "1899-08-24", death: "1986-06-14",
		books: []sampleBook{
			{isbn: "9780802130303", title: "Ficciones", year: 1944},
		},
	},
	{
		name: "Ursula K Le Guin", birth: "1929-10-21", death: "2018-01-22",
		books: []sampleBook{
			{isbn: "9780441478125", title: "The Left Hand of Darkness", year: 1969},
			{isbn: "9780060512750", title: "The Dispossessed", year: 1974},
		},
	},
}

// Seed loads a small sample catalog through the catalog service. It does
// nothing when authors already exist and reports how many books it added.
func (a *App) Seed(ctx context.Context) (int, error) {
	existing, err := a.Catalog.Authors(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		a.Log.Info("catalog not empty, skipping seed", zap.Int("authors", len(existing)))
		return 0, nil
	}

	added := 0
	for _, s := range samples {
		author, err := a.Catalog.AddAuthor(ctx, service.AuthorInput{
			Name:        s.name,
			BirthDate:   s.birth,
			DateOfDeath: s.death,
		})
		if err != nil {
			return added, errors.Wrapf(err, "seed author %q", s.name)
		}

		for _, b := range s.books {
			_, err := a.Catalog.AddBook(ctx, service.BookInput{
				ISBN:            b.isbn,
				Title:           b.title,
				PublicationYear: strconv.Itoa(b.year),
				AuthorID:        strconv.FormatUint(uint64(author.ID), 10),
			})
			if err != nil {
				return added, errors.Wrapf(err, "seed book %q", b.title)
			}
			added++
		}
	}
	return added, nil
}
