package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library/internal/service"
	"go.uber.org/zap"
)

const indexTemplate = "index.tmpl"

type CatalogHandler struct {
	svc CatalogService
	log *zap.Logger
}

func NewCatalogHandler(svc CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Index)
}

// Index godoc
// @Summary      List the catalog
// @Description  List every book with its author, or search titles by substring
// @Tags         catalog
// @Produce      html,json
// @Param        sort     query     string  false  "Sort order, ignored while searching"  Enums(author,title) default(author)
// @Param        search   query     string  false  "Title substring"
// @Param        message  query     string  false  "Message to display"
// @Success      200  {object}  CatalogPage
// @Failure      500  {object}  CatalogPage  "Storage error"
// @Router       / [get]
func (h *CatalogHandler) Index(c *gin.Context) {
	page := CatalogPage{
		Title:   "Catalog",
		Books:   []Book{},
		Message: c.Query("message"),
	}
	if page.Message != "" {
		page.MessageKind = messageInfo
	}

	res, err := h.svc.ListBooks(c.Request.Context(), service.ListParams{
		Sort:   c.Query("sort"),
		Search: c.Query("search"),
	})
	if err != nil {
		h.log.Error("list books failed", zap.Error(err))
		page.Sort = service.NormalizeSort(c.Query("sort"))
		page.Search = c.Query("search")
		page.Message = "An error occurred while loading the catalog."
		page.MessageKind = messageError
		render(c, http.StatusInternalServerError, indexTemplate, page)
		return
	}

	page.Sort = res.Sort
	page.Search = res.Search
	if res.NoMatches {
		page.Message = "No books found matching '" + res.Search + "'."
		page.MessageKind = messageInfo
	}
	for _, row := range res.Rows {
		page.Books = append(page.Books, toBook(row.Book, row.CoverURL))
	}

	render(c, http.StatusOK, indexTemplate, page)
}
