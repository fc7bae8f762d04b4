package v1

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/accounts"
)

// Session keys
const (
	sessionKeyUserID = "user_id"
	sessionKeyVisits = "num_visits"
)

const contextUserKey = "currentUser"

// CurrentUser resolves the session user, if any, and stores it on the
// request context for handlers and guards downstream. Anonymous
// requests pass through untouched.
func CurrentUser(accountService accounts.AccountService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessions.Default(ctx)
		userID, ok := session.Get(sessionKeyUserID).(string)
		if !ok || userID == "" {
			ctx.Next()
			return
		}

		user, err := accountService.GetByID(ctx, userID)
		if err != nil {
			// Stale session, e.g. a deleted user; drop the login.
			session.Delete(sessionKeyUserID)
			_ = session.Save()
			ctx.Next()
			return
		}

		ctx.Set(contextUserKey, user)
		ctx.Next()
	}
}

func userFromContext(ctx *gin.Context) *accounts.User {
	v, ok := ctx.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*accounts.User)
	return user
}

// RequireLogin redirects anonymous requests to the login page, carrying
// the requested path as the post-login target.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if userFromContext(ctx) == nil {
			redirectToLogin(ctx)
			return
		}
		ctx.Next()
	}
}

// RequirePermission redirects anonymous requests to the login page and
// rejects authenticated requests lacking perm with 403. The guard runs
// before any query or mutation of the handler body.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := userFromContext(ctx)
		if user == nil {
			redirectToLogin(ctx)
			return
		}
		if !user.HasPermission(perm) {
			renderError(ctx, http.StatusForbidden, "You do not have permission to access this page.")
			return
		}
		ctx.Next()
	}
}

func redirectToLogin(ctx *gin.Context) {
	target := LoginPath + "?next=" + url.QueryEscape(ctx.Request.URL.Path)
	ctx.Redirect(http.StatusFound, target)
	ctx.Abort()
}
