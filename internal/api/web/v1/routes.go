package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// Route paths referenced from handlers and templates.
const (
	IndexPath    = "/catalog"
	BooksPath    = "/catalog/books"
	AuthorsPath  = "/catalog/authors"
	MyLoansPath  = "/catalog/mybooks"
	AllLoansPath = "/catalog/borrowed"
	LoginPath    = "/accounts/login"
	LogoutPath   = "/accounts/logout"
)

func bookDetailPath(bookID string) string {
	return BooksPath + "/" + bookID
}

func authorDetailPath(authorID string) string {
	return AuthorsPath + "/" + authorID
}

// SetupRoutes sets up all the web routes for version 1.
func SetupRoutes(r *gin.Engine,
	summaryService catalog.SummaryService,
	bookService catalog.BookService,
	authorService catalog.AuthorService,
	loanService catalog.LoanService,
	accountService accounts.AccountService,
	logger logger.Logger) {

	r.Use(CurrentUser(accountService))

	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, IndexPath)
	})

	// Public catalog pages
	catalogHandler := NewCatalogHandler(summaryService, bookService, authorService, loanService, logger)
	r.GET(IndexPath, catalogHandler.Index)
	r.GET(BooksPath, catalogHandler.BookList)
	r.GET(BooksPath+"/:id", catalogHandler.BookDetail)
	r.GET(AuthorsPath, catalogHandler.AuthorList)
	r.GET(AuthorsPath+"/:id", catalogHandler.AuthorDetail)

	// Loan pages and the renewal workflow
	loanHandler := NewLoanHandler(loanService, logger)
	r.GET(MyLoansPath, RequireLogin(), loanHandler.MyLoans)
	r.GET(AllLoansPath, RequirePermission(accounts.PermCanMarkReturned), loanHandler.AllLoans)
	r.GET("/catalog/copies/:id/renew", RequirePermission(accounts.PermCanMarkReturned), loanHandler.RenewBookGet)
	r.POST("/catalog/copies/:id/renew", RequirePermission(accounts.PermCanMarkReturned), loanHandler.RenewBookPost)

	// Author maintenance
	authorHandler := NewAuthorHandler(authorService, bookService, logger)
	r.GET(AuthorsPath+"/create", RequirePermission(accounts.PermAddAuthor), authorHandler.CreateGet)
	r.POST(AuthorsPath+"/create", RequirePermission(accounts.PermAddAuthor), authorHandler.CreatePost)
	r.GET(AuthorsPath+"/:id/update", RequirePermission(accounts.PermChangeAuthor), authorHandler.UpdateGet)
	r.POST(AuthorsPath+"/:id/update", RequirePermission(accounts.PermChangeAuthor), authorHandler.UpdatePost)
	r.GET(AuthorsPath+"/:id/delete", RequirePermission(accounts.PermDeleteAuthor), authorHandler.DeleteGet)
	r.POST(AuthorsPath+"/:id/delete", RequirePermission(accounts.PermDeleteAuthor), authorHandler.DeletePost)

	// Book maintenance
	bookHandler := NewBookHandler(bookService, authorService, loanService, logger)
	r.GET(BooksPath+"/create", RequirePermission(accounts.PermAddBook), bookHandler.CreateGet)
	r.POST(BooksPath+"/create", RequirePermission(accounts.PermAddBook), bookHandler.CreatePost)
	r.GET(BooksPath+"/:id/update", RequirePermission(accounts.PermChangeBook), bookHandler.UpdateGet)
	r.POST(BooksPath+"/:id/update", RequirePermission(accounts.PermChangeBook), bookHandler.UpdatePost)
	r.GET(BooksPath+"/:id/delete", RequirePermission(accounts.PermDeleteBook), bookHandler.DeleteGet)
	r.POST(BooksPath+"/:id/delete", RequirePermission(accounts.PermDeleteBook), bookHandler.DeletePost)

	// Accounts
	authHandler := NewAuthHandler(accountService, logger)
	r.GET(LoginPath, authHandler.LoginGet)
	r.POST(LoginPath, authHandler.LoginPost)
	r.GET(LogoutPath, authHandler.Logout)
}
