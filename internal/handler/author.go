package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library/internal/service"
	"github.com/snnyvrz/library/internal/validation"
	"go.uber.org/zap"
)

const addAuthorTemplate = "add_author.tmpl"

type AuthorHandler struct {
	svc CatalogService
	log *zap.Logger
}

func NewAuthorHandler(svc CatalogService, log *zap.Logger) *AuthorHandler {
	return &AuthorHandler{svc: svc, log: log}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/add_author", h.AuthorForm)
	r.POST("/add_author", h.AddAuthor)
}

// AuthorForm godoc
// @Summary      Author form
// @Description  Render the empty add-author form
// @Tags         authors
// @Produce      html,json
// @Success      200  {object}  AddAuthorPage
// @Router       /add_author [get]
func (h *AuthorHandler) AuthorForm(c *gin.Context) {
	render(c, http.StatusOK, addAuthorTemplate, AddAuthorPage{Title: "Add author"})
}

// AddAuthor godoc
// @Summary      Add an author
// @Description  Validate and store a new author. Dates use YYYY-MM-DD.
// @Tags         authors
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        name           formData  string  true   "Letters and spaces only"
// @Param        birth_date     formData  string  false  "Birth date"     example(1920-01-02)
// @Param        date_of_death  formData  string  false  "Date of death"  example(1992-04-06)
// @Success      201  {object}  AddAuthorPage
// @Failure      400  {object}  AddAuthorPage  "Validation error"
// @Failure      409  {object}  AddAuthorPage  "Constraint violation"
// @Failure      500  {object}  AddAuthorPage  "Storage error"
// @Router       /add_author [post]
func (h *AuthorHandler) AddAuthor(c *gin.Context) {
	page := AddAuthorPage{Title: "Add author"}

	if verr := validation.BindForm(c, &page.Form); verr != nil {
		h.renderInvalid(c, page, verr)
		return
	}

	author, err := h.svc.AddAuthor(c.Request.Context(), service.AuthorInput{
		Name:        page.Form.Name,
		BirthDate:   page.Form.BirthDate,
		DateOfDeath: page.Form.DateOfDeath,
	})
	if err != nil {
		if verr, ok := validationFailure(err); ok {
			h.renderInvalid(c, page, verr)
			return
		}

		status := failureStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error("add author failed", zap.Error(err))
		}
		page.Message = "Error adding author: " + failureDetail(err)
		page.MessageKind = messageError
		render(c, status, addAuthorTemplate, page)
		return
	}

	view := toAuthor(*author)
	render(c, createdStatus(c), addAuthorTemplate, AddAuthorPage{
		Title:       "Add author",
		Author:      &view,
		Message:     "Author '" + author.Name + "' added successfully.",
		MessageKind: messageSuccess,
	})
}

// renderInvalid re-renders the form with the submitted values kept.
func (h *AuthorHandler) renderInvalid(c *gin.Context, page AddAuthorPage, verr *validation.ValidationError) {
	page.Message = verr.Message
	page.MessageKind = messageWarning
	page.Errors = validation.FieldErrors(verr)
	render(c, http.StatusBadRequest, addAuthorTemplate, page)
}
