package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// AuthorHandler defines the librarian-only author maintenance pages.
type AuthorHandler interface {
	CreateGet(ctx *gin.Context)
	CreatePost(ctx *gin.Context)
	UpdateGet(ctx *gin.Context)
	UpdatePost(ctx *gin.Context)
	DeleteGet(ctx *gin.Context)
	DeletePost(ctx *gin.Context)
}

type authorHandler struct {
	authorService catalog.AuthorService
	bookService   catalog.BookService
	logger        logger.Logger
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(authorService catalog.AuthorService, bookService catalog.BookService, logger logger.Logger) AuthorHandler {
	return &authorHandler{
		authorService: authorService,
		bookService:   bookService,
		logger:        logger,
	}
}

// CreateGet renders an empty author form with the death date pre-filled.
func (h *authorHandler) CreateGet(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "author_form.html", pageData(ctx, gin.H{
		"Form": AuthorForm{DateOfDeath: DefaultDeathDate},
	}))
}

// CreatePost persists a new author and redirects to its detail page.
func (h *authorHandler) CreatePost(ctx *gin.Context) {
	var form AuthorForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderForm(ctx, form, "enter valid author details")
		return
	}
	if err := form.Validate(); err != nil {
		h.renderForm(ctx, form, err.Error())
		return
	}

	author, err := h.authorService.Create(ctx, form.ToDomain())
	if err != nil {
		h.logger.Error("failed to create author: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, authorDetailPath(author.ID))
}

// UpdateGet renders the author form pre-filled with the stored fields.
func (h *authorHandler) UpdateGet(ctx *gin.Context) {
	author, ok := h.resolveAuthor(ctx)
	if !ok {
		return
	}

	form := AuthorForm{
		FirstName: author.FirstName,
		LastName:  author.LastName,
	}
	if author.DateOfBirth != nil {
		form.DateOfBirth = *author.DateOfBirth
	}
	if author.DateOfDeath != nil {
		form.DateOfDeath = *author.DateOfDeath
	}

	ctx.HTML(http.StatusOK, "author_form.html", pageData(ctx, gin.H{
		"Form":   form,
		"Author": author,
	}))
}

// UpdatePost applies the submitted fields and redirects to the detail
// page.
func (h *authorHandler) UpdatePost(ctx *gin.Context) {
	author, ok := h.resolveAuthor(ctx)
	if !ok {
		return
	}

	var form AuthorForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderForm(ctx, form, "enter valid author details")
		return
	}
	if err := form.Validate(); err != nil {
		h.renderForm(ctx, form, err.Error())
		return
	}

	updated := form.ToDomain()
	updated.ID = author.ID
	if _, err := h.authorService.Update(ctx, updated); err != nil {
		h.logger.Error("failed to update author: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, authorDetailPath(author.ID))
}

// DeleteGet renders the delete confirmation, listing the author's books
// since those go with them.
func (h *authorHandler) DeleteGet(ctx *gin.Context) {
	author, ok := h.resolveAuthor(ctx)
	if !ok {
		return
	}

	books, err := h.bookService.ListByAuthor(ctx, author.ID)
	if err != nil {
		h.logger.Error("failed to fetch author's books: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "author_confirm_delete.html", pageData(ctx, gin.H{
		"Author": author,
		"Books":  books,
	}))
}

// DeletePost removes the author and redirects to the author list. A
// repeated submit finds the ID gone and gets a 404.
func (h *authorHandler) DeletePost(ctx *gin.Context) {
	err := h.authorService.DeleteByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Author not found.")
			return
		}
		h.logger.Error("failed to delete author: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, AuthorsPath)
}

func (h *authorHandler) resolveAuthor(ctx *gin.Context) (*catalog.Author, bool) {
	author, err := h.authorService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Author not found.")
			return nil, false
		}
		h.logger.Error("failed to fetch author: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return nil, false
	}
	return author, true
}

func (h *authorHandler) renderForm(ctx *gin.Context, form AuthorForm, message string) {
	ctx.HTML(http.StatusOK, "author_form.html", pageData(ctx, gin.H{
		"Form":  form,
		"Error": message,
	}))
}
