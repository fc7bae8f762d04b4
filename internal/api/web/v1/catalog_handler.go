package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// CatalogHandler defines the public, read-only pages of the catalog.
type CatalogHandler interface {
	Index(ctx *gin.Context)
	BookList(ctx *gin.Context)
	BookDetail(ctx *gin.Context)
	AuthorList(ctx *gin.Context)
	AuthorDetail(ctx *gin.Context)
}

type catalogHandler struct {
	summaryService catalog.SummaryService
	bookService    catalog.BookService
	authorService  catalog.AuthorService
	loanService    catalog.LoanService
	logger         logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(
	summaryService catalog.SummaryService,
	bookService catalog.BookService,
	authorService catalog.AuthorService,
	loanService catalog.LoanService,
	logger logger.Logger,
) CatalogHandler {
	return &catalogHandler{
		summaryService: summaryService,
		bookService:    bookService,
		authorService:  authorService,
		loanService:    loanService,
		logger:         logger,
	}
}

// Index renders the home page with the catalog totals and the visit
// counter of the session. The counter reports its value before this
// visit, so a fresh session sees 0.
func (h *catalogHandler) Index(ctx *gin.Context) {
	summary, err := h.summaryService.Summarize(ctx)
	if err != nil {
		h.logger.Error("failed to summarize catalog: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	session := sessions.Default(ctx)
	visits, _ := session.Get(sessionKeyVisits).(int)
	session.Set(sessionKeyVisits, visits+1)
	if err := session.Save(); err != nil {
		h.logger.Warn("failed to save session: ", err)
	}

	ctx.HTML(http.StatusOK, "index.html", pageData(ctx, gin.H{
		"Summary":   summary,
		"NumVisits": visits,
	}))
}

// BookList renders one page of the book list.
func (h *catalogHandler) BookList(ctx *gin.Context) {
	query := pageQueryFrom(ctx)

	books, total, err := h.bookService.List(ctx, query)
	if err != nil {
		h.logger.Error("failed to list books: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "book_list.html", pageData(ctx, gin.H{
		"Books":      books,
		"Pagination": newPagination(query, total),
	}))
}

// BookDetail renders a single book with its copies.
func (h *catalogHandler) BookDetail(ctx *gin.Context) {
	bookID := ctx.Param("id")

	book, err := h.bookService.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Book not found.")
			return
		}
		h.logger.Error("failed to fetch book: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	copies, err := h.loanService.ListCopiesOf(ctx, bookID)
	if err != nil {
		h.logger.Error("failed to fetch book copies: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "book_detail.html", pageData(ctx, gin.H{
		"Book":   book,
		"Copies": copies,
	}))
}

// AuthorList renders one page of the author list.
func (h *catalogHandler) AuthorList(ctx *gin.Context) {
	query := pageQueryFrom(ctx)

	authors, total, err := h.authorService.List(ctx, query)
	if err != nil {
		h.logger.Error("failed to list authors: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "author_list.html", pageData(ctx, gin.H{
		"Authors":    authors,
		"Pagination": newPagination(query, total),
	}))
}

// AuthorDetail renders a single author with their books.
func (h *catalogHandler) AuthorDetail(ctx *gin.Context) {
	authorID := ctx.Param("id")

	author, err := h.authorService.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Author not found.")
			return
		}
		h.logger.Error("failed to fetch author: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	books, err := h.bookService.ListByAuthor(ctx, authorID)
	if err != nil {
		h.logger.Error("failed to fetch author's books: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "author_detail.html", pageData(ctx, gin.H{
		"Author": author,
		"Books":  books,
	}))
}
