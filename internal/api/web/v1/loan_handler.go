package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// LoanHandler defines the loan pages and the renewal workflow. All of
// its routes sit behind the login or permission guards.
type LoanHandler interface {
	MyLoans(ctx *gin.Context)
	AllLoans(ctx *gin.Context)
	RenewBookGet(ctx *gin.Context)
	RenewBookPost(ctx *gin.Context)
}

type loanHandler struct {
	loanService catalog.LoanService
	logger      logger.Logger
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loanService catalog.LoanService, logger logger.Logger) LoanHandler {
	return &loanHandler{
		loanService: loanService,
		logger:      logger,
	}
}

// MyLoans renders the copies on loan to the request user, soonest due
// date first.
func (h *loanHandler) MyLoans(ctx *gin.Context) {
	user := userFromContext(ctx)
	query := pageQueryFrom(ctx)

	copies, total, err := h.loanService.ListBorrowedBy(ctx, user.ID, query)
	if err != nil {
		h.logger.Error("failed to list borrowed copies: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "my_loans.html", pageData(ctx, gin.H{
		"Copies":     copies,
		"Pagination": newPagination(query, total),
	}))
}

// AllLoans renders every on-loan copy across users, for librarians.
func (h *loanHandler) AllLoans(ctx *gin.Context) {
	query := pageQueryFrom(ctx)

	copies, total, err := h.loanService.ListOnLoan(ctx, query)
	if err != nil {
		h.logger.Error("failed to list on-loan copies: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.HTML(http.StatusOK, "all_loans.html", pageData(ctx, gin.H{
		"Copies":     copies,
		"Pagination": newPagination(query, total),
	}))
}

// RenewBookGet renders the renewal form pre-filled with the proposed
// due date.
func (h *loanHandler) RenewBookGet(ctx *gin.Context) {
	copy, ok := h.resolveCopy(ctx)
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, "renew_form.html", pageData(ctx, gin.H{
		"Copy":        copy,
		"RenewalDate": ProposedRenewalDate(),
	}))
}

// RenewBookPost validates the proposed date, applies it, and redirects
// to the all-loans page. A rejected date re-renders the form with the
// submitted value and the failure message.
func (h *loanHandler) RenewBookPost(ctx *gin.Context) {
	copy, ok := h.resolveCopy(ctx)
	if !ok {
		return
	}

	var form RenewBookForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderRenewForm(ctx, copy, &form, "enter a valid date")
		return
	}
	if err := form.Validate(); err != nil {
		h.renderRenewForm(ctx, copy, &form, err.Error())
		return
	}

	if err := h.loanService.Renew(ctx, copy.ID, form.RenewalDate); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Book copy not found.")
			return
		}
		h.logger.Error("failed to renew loan: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, AllLoansPath)
}

// resolveCopy looks up the copy addressed by the route before any form
// handling, so an unknown ID is a 404 regardless of the submitted data.
func (h *loanHandler) resolveCopy(ctx *gin.Context) (*catalog.BookInstance, bool) {
	copy, err := h.loanService.GetCopyByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "Book copy not found.")
			return nil, false
		}
		h.logger.Error("failed to fetch book copy: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return nil, false
	}
	return copy, true
}

func (h *loanHandler) renderRenewForm(ctx *gin.Context, copy *catalog.BookInstance, form *RenewBookForm, message string) {
	ctx.HTML(http.StatusOK, "renew_form.html", pageData(ctx, gin.H{
		"Copy":        copy,
		"RenewalDate": form.RenewalDate,
		"Error":       message,
	}))
}
