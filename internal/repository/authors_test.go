package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snnyvrz/library/internal/model"
	"github.com/snnyvrz/library/internal/testutil"
)

func TestGormAuthorRepository_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAuthorRepository(db)
	ctx := context.Background()

	birth := time.Date(1920, 1, 2, 0, 0, 0, 0, time.UTC)
	death := time.Date(1992, 4, 6, 0, 0, 0, 0, time.UTC)

	author := model.Author{Name: "Isaac Asimov", BirthDate: &birth, DateOfDeath: &death}
	if err := repo.Create(ctx, &author); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	var stored model.Author
	if err := db.First(&stored, author.ID).Error; err != nil {
		t.Fatalf("expected author in db, got error: %v", err)
	}

	if stored.Name != "Isaac Asimov" {
		t.Errorf("expected name Isaac Asimov, got %q", stored.Name)
	}
	if stored.BirthDate == nil || stored.BirthDate.Format("2006-01-02") != "1920-01-02" {
		t.Errorf("expected birth date 1920-01-02, got %v", stored.BirthDate)
	}
	if stored.DateOfDeath == nil || stored.DateOfDeath.Format("2006-01-02") != "1992-04-06" {
		t.Errorf("expected date of death 1992-04-06, got %v", stored.DateOfDeath)
	}
}

func TestGormAuthorRepository_ListOrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAuthorRepository(db)

	testutil.SeedAuthor(t, db, "Ursula Le Guin")
	testutil.SeedAuthor(t, db, "Frank Herbert")
	testutil.SeedAuthor(t, db, "Isaac Asimov")

	authors, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	want := []string{"Frank Herbert", "Isaac Asimov", "Ursula Le Guin"}
	if len(authors) != len(want) {
		t.Fatalf("expected %d authors, got %d", len(want), len(authors))
	}
	for i, a := range authors {
		if a.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], a.Name)
		}
	}
}

func TestGormAuthorRepository_DeleteWithBooksIsRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAuthorRepository(db)

	author := testutil.SeedAuthor(t, db, "Frank Herbert")
	testutil.SeedBook(t, db, author, "Dune", "0441172717")

	err := repo.Delete(context.Background(), author.ID)

	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstraintError, got %T (%v)", err, err)
	}
	if n := testutil.CountAuthors(t, db); n != 1 {
		t.Errorf("expected author to survive, got %d authors", n)
	}
}

func TestGormAuthorRepository_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAuthorRepository(db)

	if err := repo.Delete(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
