package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/snnyvrz/library/internal/repository"
	"github.com/snnyvrz/library/internal/service"
	"github.com/snnyvrz/library/internal/validation"
	"go.uber.org/zap"
)

const addBookTemplate = "add_book.tmpl"

const (
	msgBookNotFound  = "Book not found."
	msgDeleteFailure = "An error occurred while deleting the book."
)

type BookHandler struct {
	svc CatalogService
	log *zap.Logger
}

func NewBookHandler(svc CatalogService, log *zap.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: log}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/add_book", h.BookForm)
	r.POST("/add_book", h.AddBook)
	r.POST("/book/:id/delete", h.DeleteBook)
}

// BookForm godoc
// @Summary      Book form
// @Description  Render the add-book form with every author ordered by name
// @Tags         books
// @Produce      html,json
// @Success      200  {object}  AddBookPage
// @Failure      500  {object}  AddBookPage  "Storage error"
// @Router       /add_book [get]
func (h *BookHandler) BookForm(c *gin.Context) {
	page := AddBookPage{Title: "Add book"}
	if !h.loadAuthors(c, &page) {
		render(c, http.StatusInternalServerError, addBookTemplate, page)
		return
	}
	render(c, http.StatusOK, addBookTemplate, page)
}

// AddBook godoc
// @Summary      Add a book
// @Description  Validate and store a new book for an existing author
// @Tags         books
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        isbn              formData  string  true   "10 or 13 digits"
// @Param        title             formData  string  true   "Title"
// @Param        publication_year  formData  int     false  "Year between 1000 and the current year"
// @Param        author_id         formData  int     true   "Author ID"
// @Param        cover_url         formData  string  false  "Cover image URL"
// @Param        description       formData  string  false  "Description"
// @Success      201  {object}  AddBookPage
// @Failure      400  {object}  AddBookPage  "Validation error"
// @Failure      409  {object}  AddBookPage  "Duplicate ISBN or unknown author"
// @Failure      500  {object}  AddBookPage  "Storage error"
// @Router       /add_book [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	page := AddBookPage{Title: "Add book"}

	if verr := validation.BindForm(c, &page.Form); verr != nil {
		h.renderInvalid(c, page, verr)
		return
	}

	book, err := h.svc.AddBook(c.Request.Context(), service.BookInput{
		ISBN:            page.Form.ISBN,
		Title:           page.Form.Title,
		PublicationYear: string(page.Form.PublicationYear),
		AuthorID:        string(page.Form.AuthorID),
		CoverURL:        page.Form.CoverURL,
		Description:     page.Form.Description,
	})
	if err != nil {
		if verr, ok := validationFailure(err); ok {
			h.renderInvalid(c, page, verr)
			return
		}

		status := failureStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error("add book failed", zap.Error(err))
		}
		h.loadAuthors(c, &page)
		page.Message = "Error adding book: " + failureDetail(err)
		page.MessageKind = messageError
		render(c, status, addBookTemplate, page)
		return
	}

	view := toBook(*book, book.CoverURL)
	done := AddBookPage{
		Title:       "Add book",
		Book:        &view,
		Message:     "Book '" + book.Title + "' added successfully.",
		MessageKind: messageSuccess,
	}
	h.loadAuthors(c, &done)
	render(c, createdStatus(c), addBookTemplate, done)
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book and, when it was their last one, its author. Always redirects to the catalog with a message.
// @Tags         books
// @Param        id   path  int  true  "Book ID"
// @Success      303  {string}  string  "Redirect to /?message=..."
// @Router       /book/{id}/delete [post]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		redirectHome(c, msgBookNotFound)
		return
	}

	res, err := h.svc.DeleteBook(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirectHome(c, msgBookNotFound)
			return
		}
		h.log.Error("delete book failed", zap.Uint64("book_id", id), zap.Error(err))
		redirectHome(c, msgDeleteFailure)
		return
	}

	message := "Book '" + res.Book.Title + "' deleted successfully."
	if res.AuthorRemoved {
		message += " Author '" + res.Book.Author.Name + "' was removed as well."
	}
	redirectHome(c, message)
}

// loadAuthors fills the author picker; on failure the page carries an error
// message instead and false is returned.
func (h *BookHandler) loadAuthors(c *gin.Context, page *AddBookPage) bool {
	authors, err := h.svc.Authors(c.Request.Context())
	if err != nil {
		h.log.Error("list authors failed", zap.Error(err))
		page.Authors = []Author{}
		page.Message = "Error loading authors."
		page.MessageKind = messageError
		return false
	}
	page.Authors = toAuthors(authors)
	return true
}

func (h *BookHandler) renderInvalid(c *gin.Context, page AddBookPage, verr *validation.ValidationError) {
	h.loadAuthors(c, &page)
	page.Message = verr.Message
	page.MessageKind = messageWarning
	page.Errors = validation.FieldErrors(verr)
	render(c, http.StatusBadRequest, addBookTemplate, page)
}
