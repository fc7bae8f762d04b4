//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mikescor/local-library/internal/domain/accounts"
)

// Fixed UUIDs used across handler tests.
const (
	testAuthorID = "3f1d2c4b-5a6e-4f7d-8c9b-0a1b2c3d4e5f"
	testBookID   = "7a8b9c0d-1e2f-4a3b-8c5d-6e7f8a9b0c1d"
	testCopyID   = "5e4d3c2b-1a0f-4e9d-9c7b-6a5f4e3d2c1b"
	testUserID   = "0a1b2c3d-4e5f-4a7b-9c9d-0e1f2a3b4c5d"
	testGenreID  = "9b8a7c6d-5e4f-4d3c-8b1a-2c3d4e5f6a7b"

	testPassword = "s3cretpass"
)

type testServices struct {
	summary *MockSummaryService
	book    *MockBookService
	author  *MockAuthorService
	loan    *MockLoanService
	account *MockAccountService
}

func newTestServices() *testServices {
	return &testServices{
		summary: new(MockSummaryService),
		book:    new(MockBookService),
		author:  new(MockAuthorService),
		loan:    new(MockLoanService),
		account: new(MockAccountService),
	}
}

func setupTestRouter(s *testServices) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("0123456789abcdef0123456789abcdef"))
	r.Use(sessions.Sessions("locallibrary_session", store))
	r.SetHTMLTemplate(HTMLTemplates())
	SetupRoutes(r, s.summary, s.book, s.author, s.loan, s.account, noopLogger{})
	return r
}

// loginAs performs a real login request and returns the session cookies
// for follow-up authenticated requests.
func loginAs(t *testing.T, r *gin.Engine, s *testServices, user *accounts.User) []*http.Cookie {
	t.Helper()

	s.account.On("Authenticate", mock.Anything, user.Username, testPassword).Return(user, nil)
	s.account.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	form := url.Values{
		"username": {user.Username},
		"password": {testPassword},
	}
	req := httptest.NewRequest(http.MethodPost, LoginPath, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func librarianUser() *accounts.User {
	return &accounts.User{
		ID:           testUserID,
		Username:     "librarian",
		PasswordHash: "x",
		Permissions:  accounts.LibrarianPermissions,
	}
}

func memberUser() *accounts.User {
	return &accounts.User{
		ID:           testUserID,
		Username:     "member",
		PasswordHash: "x",
	}
}

func doRequest(r *gin.Engine, method, target string, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_RootRedirectsToCatalog(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)

	w := doRequest(r, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, IndexPath, w.Header().Get("Location"))
}

func TestRoutes_MyLoans_AnonymousRedirectsToLogin(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)

	w := doRequest(r, http.MethodGet, MyLoansPath, "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath+"?next="+url.QueryEscape(MyLoansPath), w.Header().Get("Location"))
}

func TestRoutes_AllLoans_AnonymousRedirectsToLogin(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)

	w := doRequest(r, http.MethodGet, AllLoansPath, "", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), LoginPath)
}

func TestRoutes_AllLoans_MemberForbidden(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, memberUser())

	w := doRequest(r, http.MethodGet, AllLoansPath, "", cookies)

	assert.Equal(t, http.StatusForbidden, w.Code)
	s.loan.AssertNotCalled(t, "ListOnLoan", mock.Anything, mock.Anything)
}

func TestRoutes_AuthorCreate_MemberForbidden(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, memberUser())

	w := doRequest(r, http.MethodGet, AuthorsPath+"/create", "", cookies)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoutes_StaleSessionTreatedAsAnonymous(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	user := memberUser()
	cookies := loginAs(t, r, s, user)

	// The user disappears between requests; the guard must fall back to
	// the login redirect instead of erroring.
	s.account.ExpectedCalls = nil
	s.account.On("GetByID", mock.Anything, user.ID).Return(nil, assert.AnError)

	w := doRequest(r, http.MethodGet, MyLoansPath, "", cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), LoginPath)
}
