package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories is the set of repositories bound to one unit of work.
type Repositories struct {
	Authors AuthorRepository
	Books   BookRepository
}

// UnitOfWork runs fn inside a single transaction. The transaction commits when
// fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

type GormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Authors: NewAuthorRepository(tx),
			Books:   NewGormBookRepository(tx),
		})
	})
}
