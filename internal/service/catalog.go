// Package service holds the catalog use cases: adding authors and books,
// listing the catalog and deleting books with orphan-author cleanup.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/snnyvrz/library/internal/cover"
	"github.com/snnyvrz/library/internal/model"
	"github.com/snnyvrz/library/internal/repository"
	"github.com/snnyvrz/library/internal/validation"
	"go.uber.org/zap"
)

type Catalog struct {
	authors repository.AuthorRepository
	books   repository.BookRepository
	uow     repository.UnitOfWork
	covers  cover.Lookup
	log     *zap.Logger
	now     func() time.Time
}

func NewCatalog(
	authors repository.AuthorRepository,
	books repository.BookRepository,
	uow repository.UnitOfWork,
	covers cover.Lookup,
	log *zap.Logger,
) *Catalog {
	if covers == nil {
		covers = cover.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		authors: authors,
		books:   books,
		uow:     uow,
		covers:  covers,
		log:     log,
		now:     time.Now,
	}
}

// SetClock replaces the clock used to bound publication years.
func (s *Catalog) SetClock(now func() time.Time) {
	s.now = now
}

type AuthorInput struct {
	Name        string
	BirthDate   string
	DateOfDeath string
}

func (s *Catalog) AddAuthor(ctx context.Context, in AuthorInput) (*model.Author, error) {
	name, err := validation.ValidateAuthorName(in.Name)
	if err != nil {
		return nil, err
	}
	birth, err := validation.ValidateDate(in.BirthDate, "birth date")
	if err != nil {
		return nil, err
	}
	death, err := validation.ValidateDate(in.DateOfDeath, "date of death")
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateAuthorDates(birth, death); err != nil {
		return nil, err
	}

	author := &model.Author{
		Name:        name,
		BirthDate:   birth,
		DateOfDeath: death,
	}

	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		return repos.Authors.Create(ctx, author)
	})
	if err != nil {
		return nil, errors.Wrap(err, "create author")
	}

	s.log.Info("author added", zap.Uint("author_id", author.ID), zap.String("name", author.Name))
	return author, nil
}

type BookInput struct {
	ISBN            string
	Title           string
	PublicationYear string
	AuthorID        string
	CoverURL        string
	Description     string
}

func (s *Catalog) AddBook(ctx context.Context, in BookInput) (*model.Book, error) {
	title, err := validation.ValidateTitle(in.Title)
	if err != nil {
		return nil, err
	}
	isbn, err := validation.ValidateIsbn(in.ISBN)
	if err != nil {
		return nil, err
	}
	year, err := validation.ValidatePublicationYear(in.PublicationYear, s.now().Year())
	if err != nil {
		return nil, err
	}
	authorID, err := validation.ValidateAuthorID(in.AuthorID)
	if err != nil {
		return nil, err
	}

	book := &model.Book{
		ISBN:            isbn,
		Title:           title,
		PublicationYear: year,
		AuthorID:        authorID,
		CoverURL:        strings.TrimSpace(in.CoverURL),
		Description:     strings.TrimSpace(in.Description),
	}

	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		return repos.Books.Create(ctx, book)
	})
	if err != nil {
		return nil, errors.Wrap(err, "create book")
	}

	s.log.Info("book added", zap.Uint("book_id", book.ID), zap.String("isbn", book.ISBN))
	return book, nil
}

// Authors lists the authors offered by the book form.
func (s *Catalog) Authors(ctx context.Context) ([]model.Author, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list authors")
	}
	return authors, nil
}

type ListParams struct {
	Sort   string
	Search string
}

type BookRow struct {
	Book     model.Book
	CoverURL string
}

type ListResult struct {
	Rows   []BookRow
	Sort   string
	Search string
	// NoMatches is set when a search returned nothing.
	NoMatches bool
}

func NormalizeSort(sort string) string {
	if sort == repository.SortByTitle {
		return repository.SortByTitle
	}
	return repository.SortByAuthor
}

func (s *Catalog) ListBooks(ctx context.Context, p ListParams) (*ListResult, error) {
	res := &ListResult{
		Sort:   NormalizeSort(p.Sort),
		Search: strings.TrimSpace(p.Search),
	}

	books, err := s.books.List(ctx, repository.BookListParams{
		Sort:  res.Sort,
		Query: res.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "list books")
	}

	if res.Search != "" && len(books) == 0 {
		res.NoMatches = true
		return res, nil
	}

	res.Rows = make([]BookRow, 0, len(books))
	for _, b := range books {
		res.Rows = append(res.Rows, BookRow{Book: b, CoverURL: s.coverFor(ctx, b)})
	}
	return res, nil
}

func (s *Catalog) coverFor(ctx context.Context, b model.Book) string {
	if b.CoverURL != "" {
		return b.CoverURL
	}
	u, err := s.covers.CoverURL(ctx, b.ISBN)
	if err != nil {
		s.log.Warn("cover lookup failed", zap.String("isbn", b.ISBN), zap.Error(err))
		return ""
	}
	return u
}

type DeleteResult struct {
	Book model.Book
	// AuthorRemoved reports that the deleted book was the author's last one
	// and the author was deleted with it.
	AuthorRemoved bool
}

// DeleteBook removes the book and, in the same transaction, its author when
// no other book references it. It returns repository.ErrNotFound when the
// book does not exist.
func (s *Catalog) DeleteBook(ctx context.Context, id uint) (*DeleteResult, error) {
	var res DeleteResult

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		book, err := repos.Books.FindByID(ctx, id)
		if err != nil {
			return err
		}
		res.Book = *book

		if err := repos.Books.Delete(ctx, id); err != nil {
			return err
		}

		remaining, err := repos.Books.CountByAuthor(ctx, book.AuthorID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		if err := repos.Authors.Delete(ctx, book.AuthorID); err != nil {
			return err
		}
		res.AuthorRemoved = true
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) && res.Book.ID == 0 {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrapf(err, "delete book %d", id)
	}

	s.log.Info("book deleted",
		zap.Uint("book_id", res.Book.ID),
		zap.Uint("author_id", res.Book.AuthorID),
		zap.Bool("author_removed", res.AuthorRemoved),
	)
	return &res, nil
}
