package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library/internal/cover"
	"github.com/snnyvrz/library/internal/model"
	"github.com/snnyvrz/library/internal/repository"
	"github.com/snnyvrz/library/internal/service"
	"github.com/snnyvrz/library/internal/web"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeCatalog struct {
	AddAuthorFn  func(ctx context.Context, in service.AuthorInput) (*model.Author, error)
	AddBookFn    func(ctx context.Context, in service.BookInput) (*model.Book, error)
	AuthorsFn    func(ctx context.Context) ([]model.Author, error)
	ListBooksFn  func(ctx context.Context, p service.ListParams) (*service.ListResult, error)
	DeleteBookFn func(ctx context.Context, id uint) (*service.DeleteResult, error)
}

func (f *fakeCatalog) AddAuthor(ctx context.Context, in service.AuthorInput) (*model.Author, error) {
	if f.AddAuthorFn != nil {
		return f.AddAuthorFn(ctx, in)
	}
	return &model.Author{ID: 1, Name: in.Name}, nil
}

func (f *fakeCatalog) AddBook(ctx context.Context, in service.BookInput) (*model.Book, error) {
	if f.AddBookFn != nil {
		return f.AddBookFn(ctx, in)
	}
	return &model.Book{ID: 1, ISBN: in.ISBN, Title: in.Title}, nil
}

func (f *fakeCatalog) Authors(ctx context.Context) ([]model.Author, error) {
	if f.AuthorsFn != nil {
		return f.AuthorsFn(ctx)
	}
	return nil, nil
}

func (f *fakeCatalog) ListBooks(ctx context.Context, p service.ListParams) (*service.ListResult, error) {
	if f.ListBooksFn != nil {
		return f.ListBooksFn(ctx, p)
	}
	return &service.ListResult{Sort: service.NormalizeSort(p.Sort)}, nil
}

func (f *fakeCatalog) DeleteBook(ctx context.Context, id uint) (*service.DeleteResult, error) {
	if f.DeleteBookFn != nil {
		return f.DeleteBookFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func setupTestRouterWithService(svc CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	log := zap.NewNop()
	NewCatalogHandler(svc, log).RegisterRoutes(r.Group(""))
	NewAuthorHandler(svc, log).RegisterRoutes(r.Group(""))
	NewBookHandler(svc, log).RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	svc := service.NewCatalog(
		repository.NewAuthorRepository(db),
		repository.NewGormBookRepository(db),
		repository.NewUnitOfWork(db),
		cover.Noop{},
		zap.NewNop(),
	)
	return setupTestRouterWithService(svc)
}

func doGet(router *gin.Engine, path string, asJSON bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if asJSON {
		req.Header.Set("Accept", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, form url.Values, asJSON bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if asJSON {
		req.Header.Set("Accept", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func homeWithMessage(message string) string {
	return "/?message=" + url.QueryEscape(message)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
