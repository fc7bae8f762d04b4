package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// BookHandler defines the librarian-only book maintenance pages.
type BookHandler interface {
	CreateGet(ctx *gin.Context)
	CreatePost(ctx *gin.Context)
	UpdateGet(ctx *gin.Context)
	UpdatePost(ctx *gin.Context)
	DeleteGet(ctx *gin.Context)
	DeletePost(ctx *gin.Context)
}

type bookHandler struct {
	bookService   catalog.BookService
	authorService catalog.AuthorService
	loanService   catalog.LoanService
	logger        logger.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(
	bookService catalog.BookService,
	authorService catalog.AuthorService,
	loanService catalog.LoanService,
	logger logger.Logger,
) BookHandler {
	return &bookHandler{
		bookService:   bookService,
		authorService: authorService,
		loanService:   loanService,
		logger:        logger,
	}
}

// CreateGet renders an empty book form with author and genre choices.
func (h *bookHandler) CreateGet(ctx *gin.Context) {
	choices, ok := h.formChoices(ctx)
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, "book_form.html", pageData(ctx, gin.H{
		"Form":    BookForm{},
		"Authors": choices.authors,
		"Genres":  choices.genres,
	}))
}

// CreatePost persists a new book and redirects to its detail page.
func (h *bookHandler) CreatePost(ctx *gin.Context) {
	var form BookForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderCreateForm(ctx, form, "enter valid book details")
		return
	}
	if err := form.Validate(); err != nil {
		h.renderCreateForm(ctx, form, err.Error())
		return
	}

	book := &catalog.Book{
		Title:    form.Title,
		AuthorID: form.AuthorID,
		Summary:  form.Summary,
		ISBN:     form.ISBN,
		Language: form.Language,
	}
	created, err := h.bookService.Create(ctx, book, form.GenreIDs)
	if err != nil {
		h.logger.Error("failed to create book: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, bookDetailPath(created.ID))
}

// UpdateGet renders the book form pre-filled with the mutable fields.
// Title and author are shown but not editable.
func (h *bookHandler) UpdateGet(ctx *gin.Context) {
	book, ok := h.resolveBook(ctx)
	if !ok {
		return
	}
	choices, ok := h.formChoices(ctx)
	if !ok {
		return
	}

	genreIDs := make([]string, 0, len(book.Genres))
	for _, g := range book.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	form := BookUpdateForm{
		Summary:  book.Summary,
		Language: book.Language,
		GenreIDs: genreIDs,
	}

	ctx.HTML(http.StatusOK, "book_form.html", pageData(ctx, gin.H{
		"Form":    form,
		"Book":    book,
		"Authors": choices.authors,
		"Genres":  choices.genres,
	}))
}

// UpdatePost applies the mutable fields and redirects to the detail
// page.
func (h *bookHandler) UpdatePost(ctx *gin.Context) {
	book, ok := h.resolveBook(ctx)
	if !ok {
		return
	}

	var form BookUpdateForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderUpdateForm(ctx, book, form, "enter valid book details")
		return
	}
	if err := form.Validate(); err != nil {
		h.renderUpdateForm(ctx, book, form, err.Error())
		return
	}

	changes := catalog.BookChanges{
		Summary:  form.Summary,
		Language: form.Language,
		GenreIDs: form.GenreIDs,
	}
	if _, err := h.bookService.Update(ctx, book.ID, changes); err != nil {
		h.logger.Error("failed to update book: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, bookDetailPath(book.ID))
}

// DeleteGet renders the delete confirmation, listing the copies that go
// with the book.
func (h *bookHandler) DeleteGet(ctx *gin.Context) {
	book, ok := h.resolveBook(ctx)
	if !ok {
		return
	}

	copies, err := h.loanService.ListCopiesOf(ctx, book.ID)
	if err != nil {
		h.logger.Error("failed to fetch book copies: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "book_confirm_delete.html", pageData(ctx, gin.H{
		"Book":   book,
		"Copies": copies,
	}))
}

// DeletePost removes the book and redirects to the book list. A
// repeated submit finds the ID gone and gets a 404.
func (h *bookHandler) DeletePost(ctx *gin.Context) {
	err := h.bookService.DeleteByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Book not found.")
			return
		}
		h.logger.Error("failed to delete book: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, BooksPath)
}

type bookFormChoices struct {
	authors []*catalog.Author
	genres  []*catalog.Genre
}

func (h *bookHandler) formChoices(ctx *gin.Context) (bookFormChoices, bool) {
	authors, err := h.authorService.ListAll(ctx)
	if err != nil {
		h.logger.Error("failed to list authors: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return bookFormChoices{}, false
	}
	genres, err := h.bookService.ListGenres(ctx)
	if err != nil {
		h.logger.Error("failed to list genres: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return bookFormChoices{}, false
	}
	return bookFormChoices{authors: authors, genres: genres}, true
}

func (h *bookHandler) resolveBook(ctx *gin.Context) (*catalog.Book, bool) {
	book, err := h.bookService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Book not found.")
			return nil, false
		}
		h.logger.Error("failed to fetch book: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return nil, false
	}
	return book, true
}

func (h *bookHandler) renderCreateForm(ctx *gin.Context, form BookForm, message string) {
	choices, ok := h.formChoices(ctx)
	if !ok {
		return
	}
	ctx.HTML(http.StatusOK, "book_form.html", pageData(ctx, gin.H{
		"Form":    form,
		"Authors": choices.authors,
		"Genres":  choices.genres,
		"Error":   message,
	}))
}

func (h *bookHandler) renderUpdateForm(ctx *gin.Context, book *catalog.Book, form BookUpdateForm, message string) {
	choices, ok := h.formChoices(ctx)
	if !ok {
		return
	}
	ctx.HTML(http.StatusOK, "book_form.html", pageData(ctx, gin.H{
		"Form":    form,
		"Book":    book,
		"Authors": choices.authors,
		"Genres":  choices.genres,
		"Error":   message,
	}))
}
