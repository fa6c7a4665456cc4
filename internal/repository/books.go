package repository

import (
	"context"
	"strings"

	"github.com/snnyvrz/library/internal/model"
	"gorm.io/gorm"
)

const (
	SortByAuthor = "author"
	SortByTitle  = "title"
)

type BookListParams struct {
	// Sort is SortByAuthor or SortByTitle; anything else sorts by author.
	Sort string
	// Query, when set, restricts the list to titles containing it and
	// forces title order.
	Query string
}

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, params BookListParams) ([]model.Book, error)
	FindByAuthor(ctx context.Context, authorID uint) ([]model.Book, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return translate(r.db.WithContext(ctx).Omit("Author").Create(book).Error)
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&book, id).Error; err != nil {

		return nil, translate(err)
	}
	return &book, nil
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *GormBookRepository) List(ctx context.Context, params BookListParams) ([]model.Book, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Joins("JOIN authors ON authors.id = books.author_id").
		Preload("Author")

	switch {
	case params.Query != "":
		q = q.Where(`books.title LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(params.Query)+"%").
			Order("books.title ASC")
	case params.Sort == SortByTitle:
		q = q.Order("books.title ASC").Order("authors.name ASC")
	default:
		q = q.Order("authors.name ASC").Order("books.title ASC")
	}

	var books []model.Book
	if err := q.Order("books.id ASC").Find(&books).Error; err != nil {
		return nil, translate(err)
	}
	return books, nil
}

func (r *GormBookRepository) FindByAuthor(ctx context.Context, authorID uint) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

func (r *GormBookRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("author_id = ?", authorID).
		Count(&n).Error; err != nil {

		return 0, translate(err)
	}
	return n, nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
