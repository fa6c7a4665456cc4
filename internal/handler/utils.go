package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/snnyvrz/library/internal/model"
	"github.com/snnyvrz/library/internal/service"
)

// CatalogService is the subset of service.Catalog the page handlers use.
type CatalogService interface {
	AddAuthor(ctx context.Context, in service.AuthorInput) (*model.Author, error)
	AddBook(ctx context.Context, in service.BookInput) (*model.Book, error)
	Authors(ctx context.Context) ([]model.Author, error)
	ListBooks(ctx context.Context, p service.ListParams) (*service.ListResult, error)
	DeleteBook(ctx context.Context, id uint) (*service.DeleteResult, error)
}

const (
	messageSuccess = "success"
	messageWarning = "warning"
	messageError   = "error"
	messageInfo    = "info"
)

var offered = []string{binding.MIMEHTML, binding.MIMEJSON}

// render writes data through the named template, or as JSON when the client
// asks for it.
func render(c *gin.Context, status int, name string, data any) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  offered,
		HTMLName: name,
		Data:     data,
	})
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(offered...) == binding.MIMEJSON
}

// createdStatus is 201 for API clients; browsers get a plain 200 page.
func createdStatus(c *gin.Context) int {
	if wantsJSON(c) {
		return http.StatusCreated
	}
	return http.StatusOK
}

func redirectHome(c *gin.Context, message string) {
	c.Redirect(http.StatusSeeOther, "/?message="+url.QueryEscape(message))
}

func toAuthor(a model.Author) Author {
	return Author{
		ID:          a.ID,
		Name:        a.Name,
		BirthDate:   model.NewDate(a.BirthDate),
		DateOfDeath: model.NewDate(a.DateOfDeath),
	}
}

func toAuthors(authors []model.Author) []Author {
	out := make([]Author, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthor(a))
	}
	return out
}

func toBook(b model.Book, coverURL string) Book {
	return Book{
		ID:              b.ID,
		ISBN:            b.ISBN,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
		AuthorName:      b.Author.Name,
		CoverURL:        coverURL,
		Description:     b.Description,
	}
}
