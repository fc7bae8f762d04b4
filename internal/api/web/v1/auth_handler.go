package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// AuthHandler defines the login and logout pages.
type AuthHandler interface {
	LoginGet(ctx *gin.Context)
	LoginPost(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type authHandler struct {
	accountService accounts.AccountService
	logger         logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService accounts.AccountService, logger logger.Logger) AuthHandler {
	return &authHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// LoginGet renders the login form. The ?next parameter is carried into
// the form so the post-login redirect lands where the user was headed.
func (h *authHandler) LoginGet(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", pageData(ctx, gin.H{
		"Next": ctx.Query("next"),
	}))
}

// LoginPost verifies the credentials, stores the user on the session,
// and redirects to the requested page or the home page. Failed attempts
// re-render the form without revealing which part was wrong.
func (h *authHandler) LoginPost(ctx *gin.Context) {
	var form LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderLoginForm(ctx, form, "enter a username and password")
		return
	}
	if err := form.Validate(); err != nil {
		h.renderLoginForm(ctx, form, "enter a username and password")
		return
	}

	user, err := h.accountService.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			h.renderLoginForm(ctx, form, "invalid username or password")
			return
		}
		h.logger.Error("failed to authenticate: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	session := sessions.Default(ctx)
	session.Set(sessionKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		h.logger.Error("failed to save session: ", err)
		renderError(ctx, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	ctx.Redirect(http.StatusFound, safeNextPath(form.Next))
}

// Logout drops the session login and redirects to the home page.
func (h *authHandler) Logout(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Delete(sessionKeyUserID)
	if err := session.Save(); err != nil {
		h.logger.Warn("failed to save session: ", err)
	}
	ctx.Redirect(http.StatusFound, IndexPath)
}

// safeNextPath accepts only same-site absolute paths as a post-login
// target, so the form cannot redirect off-site.
func safeNextPath(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return IndexPath
}

func (h *authHandler) renderLoginForm(ctx *gin.Context, form LoginForm, message string) {
	ctx.HTML(http.StatusOK, "login.html", pageData(ctx, gin.H{
		"Username": form.Username,
		"Next":     form.Next,
		"Error":    message,
	}))
}
