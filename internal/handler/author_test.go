package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/snnyvrz/library/internal/model"
	"github.com/snnyvrz/library/internal/repository"
	"github.com/snnyvrz/library/internal/service"
	"github.com/snnyvrz/library/internal/testutil"
)

func TestAuthorForm_RendersHTML(t *testing.T) {
	router := setupTestRouterWithService(&fakeCatalog{})

	w := doGet(router, "/add_author", false)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
	for _, field := range []string{`name="name"`, `name="birth_date"`, `name="date_of_death"`} {
		if !strings.Contains(w.Body.String(), field) {
			t.Errorf("expected form field %s in body", field)
		}
	}
}

func TestAddAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := postForm(router, "/add_author", url.Values{
		"name":          {"Isaac Asimov"},
		"birth_date":    {"1920-01-02"},
		"date_of_death": {"1992-04-06"},
	}, true)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[AddAuthorPage](t, w)
	if resp.Message != "Author 'Isaac Asimov' added successfully." {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Author == nil || resp.Author.ID == 0 {
		t.Fatalf("expected created author in response, got %+v", resp.Author)
	}

	var stored model.Author
	if err := db.First(&stored, resp.Author.ID).Error; err != nil {
		t.Fatalf("expected author in db, got error: %v", err)
	}
	if stored.Name != "Isaac Asimov" {
		t.Errorf("expected stored name %q, got %q", "Isaac Asimov", stored.Name)
	}
	if stored.BirthDate == nil || stored.BirthDate.Format(model.DateLayout) != "1920-01-02" {
		t.Errorf("expected stored birth date 1920-01-02, got %v", stored.BirthDate)
	}
	if stored.DateOfDeath == nil || stored.DateOfDeath.Format(model.DateLayout) != "1992-04-06" {
		t.Errorf("expected stored date of death 1992-04-06, got %v", stored.DateOfDeath)
	}
}

func TestAddAuthor_HTMLSuccess(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := postForm(router, "/add_author", url.Values{"name": {"Ursula Le Guin"}}, false)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "added successfully.") {
		t.Errorf("expected success message in page, body=%s", w.Body.String())
	}
	if n := testutil.CountAuthors(t, db); n != 1 {
		t.Errorf("expected 1 author, got %d", n)
	}
}

func TestAddAuthor_DeathBeforeBirth(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := postForm(router, "/add_author", url.Values{
		"name":          {"Jane Doe"},
		"birth_date":    {"2000-01-01"},
		"date_of_death": {"1990-01-01"},
	}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[AddAuthorPage](t, w)
	if resp.Message != "date of death must be after birth date" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Form.Name != "Jane Doe" || resp.Form.BirthDate != "2000-01-01" {
		t.Errorf("expected submitted values to be kept, got %+v", resp.Form)
	}
	if len(resp.Errors) != 1 {
		t.Errorf("expected 1 field error, got %d", len(resp.Errors))
	}
	if n := testutil.CountAuthors(t, db); n != 0 {
		t.Errorf("expected no authors stored, got %d", n)
	}
}

func TestAddAuthor_InvalidName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := postForm(router, "/add_author", url.Values{"name": {"R2D2"}}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	resp := decode[AddAuthorPage](t, w)
	if resp.MessageKind != messageWarning {
		t.Errorf("expected warning message, got %q", resp.MessageKind)
	}
	if n := testutil.CountAuthors(t, db); n != 0 {
		t.Errorf("expected no authors stored, got %d", n)
	}
}

func TestAddAuthor_StorageError_Returns500(t *testing.T) {
	svc := &fakeCatalog{
		AddAuthorFn: func(ctx context.Context, in service.AuthorInput) (*model.Author, error) {
			return nil, errors.Wrap(errors.New("disk I/O error"), "create author")
		},
	}
	router := setupTestRouterWithService(svc)

	w := postForm(router, "/add_author", url.Values{"name": {"Jane Doe"}}, true)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	resp := decode[AddAuthorPage](t, w)
	if resp.Message != "Error adding author: disk I/O error" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAddAuthor_ConstraintError_Returns409(t *testing.T) {
	svc := &fakeCatalog{
		AddAuthorFn: func(ctx context.Context, in service.AuthorInput) (*model.Author, error) {
			cerr := &repository.ConstraintError{Err: errors.New("UNIQUE constraint failed: authors.name")}
			return nil, errors.Wrap(cerr, "create author")
		},
	}
	router := setupTestRouterWithService(svc)

	w := postForm(router, "/add_author", url.Values{"name": {"Jane Doe"}}, true)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
	resp := decode[AddAuthorPage](t, w)
	if resp.Message != "Error adding author: UNIQUE constraint failed: authors.name" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAddAuthor_MissingTables_Returns500(t *testing.T) {
	router := setupTestRouter(testutil.NewErrorDB(t))

	w := postForm(router, "/add_author", url.Values{"name": {"Jane Doe"}}, true)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}
	resp := decode[AddAuthorPage](t, w)
	if !strings.HasPrefix(resp.Message, "Error adding author: ") {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "no such table") {
		t.Errorf("expected storage error text in message, got %q", resp.Message)
	}
}
