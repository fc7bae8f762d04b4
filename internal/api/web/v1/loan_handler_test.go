//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mikescor/local-library/internal/domain/catalog"
)

func onLoanCopy() *catalog.BookInstance {
	due := time.Now().AddDate(0, 0, 7)
	borrowerID := testUserID
	return &catalog.BookInstance{
		ID:         testCopyID,
		BookID:     testBookID,
		Book:       &catalog.Book{ID: testBookID, Title: "Moby-Dick", Summary: "s", Language: "English", AuthorID: testAuthorID},
		Imprint:    "First edition",
		Status:     catalog.StatusOnLoan,
		DueBack:    &due,
		BorrowerID: &borrowerID,
	}
}

func renewPath(copyID string) string {
	return "/catalog/copies/" + copyID + "/renew"
}

func TestLoanHandler_MyLoans_RendersBorrowedCopies(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	user := memberUser()
	cookies := loginAs(t, r, s, user)

	s.loan.On("ListBorrowedBy", mock.Anything, user.ID, mock.Anything).
		Return([]*catalog.BookInstance{onLoanCopy()}, int64(1), nil)

	w := doRequest(r, http.MethodGet, MyLoansPath, "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Moby-Dick")
	s.loan.AssertExpectations(t)
}

func TestLoanHandler_MyLoans_EmptyList(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, memberUser())

	s.loan.On("ListBorrowedBy", mock.Anything, testUserID, mock.Anything).
		Return([]*catalog.BookInstance{}, int64(0), nil)

	w := doRequest(r, http.MethodGet, MyLoansPath, "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "There are no books borrowed.")
}

func TestLoanHandler_AllLoans_LibrarianSeesAllCopies(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.loan.On("ListOnLoan", mock.Anything, mock.Anything).
		Return([]*catalog.BookInstance{onLoanCopy()}, int64(1), nil)

	w := doRequest(r, http.MethodGet, AllLoansPath, "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Moby-Dick")
	assert.Contains(t, w.Body.String(), renewPath(testCopyID))
}

func TestLoanHandler_RenewGet_PrefillsProposedDate(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.loan.On("GetCopyByID", mock.Anything, testCopyID).Return(onLoanCopy(), nil)

	w := doRequest(r, http.MethodGet, renewPath(testCopyID), "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	proposed := ProposedRenewalDate().Format("2006-01-02")
	assert.Contains(t, w.Body.String(), `value="`+proposed+`"`)
}

func TestLoanHandler_RenewGet_UnknownCopyIs404(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.loan.On("GetCopyByID", mock.Anything, testCopyID).Return(nil, catalog.ErrNotFound)

	w := doRequest(r, http.MethodGet, renewPath(testCopyID), "", cookies)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Book copy not found.")
}

func TestLoanHandler_RenewPost_AppliesDateAndRedirects(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	wantDate := startOfToday().AddDate(0, 0, 14)
	target := wantDate.Format("2006-01-02")

	s.loan.On("GetCopyByID", mock.Anything, testCopyID).Return(onLoanCopy(), nil)
	s.loan.On("Renew", mock.Anything, testCopyID, wantDate).Return(nil)

	form := url.Values{"renewal_date": {target}}
	w := doRequest(r, http.MethodPost, renewPath(testCopyID), form.Encode(), cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, AllLoansPath, w.Header().Get("Location"))
	s.loan.AssertExpectations(t)
}

func TestLoanHandler_RenewPost_PastDateReRendersForm(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.loan.On("GetCopyByID", mock.Anything, testCopyID).Return(onLoanCopy(), nil)

	past := startOfToday().AddDate(0, 0, -1).Format("2006-01-02")
	form := url.Values{"renewal_date": {past}}
	w := doRequest(r, http.MethodPost, renewPath(testCopyID), form.Encode(), cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "renewal in past")
	assert.Contains(t, w.Body.String(), `value="`+past+`"`)
	s.loan.AssertNotCalled(t, "Renew", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoanHandler_RenewPost_TooFarAheadReRendersForm(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.loan.On("GetCopyByID", mock.Anything, testCopyID).Return(onLoanCopy(), nil)

	farAhead := startOfToday().AddDate(0, 0, RenewalWindowWeeks*7+1).Format("2006-01-02")
	form := url.Values{"renewal_date": {farAhead}}
	w := doRequest(r, http.MethodPost, renewPath(testCopyID), form.Encode(), cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "more than 4 weeks ahead")
	s.loan.AssertNotCalled(t, "Renew", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoanHandler_RenewPost_MissingDateReRendersForm(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.loan.On("GetCopyByID", mock.Anything, testCopyID).Return(onLoanCopy(), nil)

	w := doRequest(r, http.MethodPost, renewPath(testCopyID), "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "enter a renewal date")
	s.loan.AssertNotCalled(t, "Renew", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoanHandler_RenewPost_UnknownCopyIs404BeforeValidation(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.loan.On("GetCopyByID", mock.Anything, testCopyID).Return(nil, catalog.ErrNotFound)

	// Even a well-formed date gets a 404 when the copy is unknown.
	target := startOfToday().AddDate(0, 0, 14).Format("2006-01-02")
	form := url.Values{"renewal_date": {target}}
	w := doRequest(r, http.MethodPost, renewPath(testCopyID), form.Encode(), cookies)

	assert.Equal(t, http.StatusNotFound, w.Code)
	s.loan.AssertNotCalled(t, "Renew", mock.Anything, mock.Anything, mock.Anything)
}
