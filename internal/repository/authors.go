package repository

import (
	"context"

	"github.com/snnyvrz/library/internal/model"
	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	List(ctx context.Context) ([]model.Author, error)
	Delete(ctx context.Context, id uint) error
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) Create(ctx context.Context, author *model.Author) error {
	return translate(r.db.WithContext(ctx).Create(author).Error)
}

// List returns every author ordered by name, as offered by the book form.
func (r *GormAuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&authors).Error; err != nil {

		return nil, translate(err)
	}
	return authors, nil
}

func (r *GormAuthorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Author{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
