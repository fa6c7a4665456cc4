package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/library/internal/db"
	"github.com/snnyvrz/library/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory sqlite database with the schema
// migrated and foreign keys enforced.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := db.SQLiteDSN("file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared")

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// NewErrorDB opens a database without any tables, so every query fails.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

func SeedAuthor(t *testing.T, gdb *gorm.DB, name string) model.Author {
	t.Helper()

	author := model.Author{
		Name: name,
	}

	if err := gdb.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedAuthorWithDates(t *testing.T, gdb *gorm.DB, name string, birth, death *time.Time) model.Author {
	t.Helper()

	author := model.Author{
		Name:        name,
		BirthDate:   birth,
		DateOfDeath: death,
	}

	if err := gdb.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedBook(t *testing.T, gdb *gorm.DB, author model.Author, title, isbn string) model.Book {
	t.Helper()

	book := model.Book{
		ISBN:     isbn,
		Title:    title,
		AuthorID: author.ID,
	}

	if err := gdb.Omit("Author").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func CountAuthors(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(&model.Author{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count authors: %v", err)
	}
	return n
}

func CountBooks(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(&model.Book{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count books: %v", err)
	}
	return n
}
