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

func TestAuthorHandler_CreateGet_PrefillsDeathDate(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	w := doRequest(r, http.MethodGet, AuthorsPath+"/create", "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Author")
	assert.Contains(t, w.Body.String(), `value="2016-12-10"`)
}

func TestAuthorHandler_CreatePost_RedirectsToDetail(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	created := &catalog.Author{ID: testAuthorID, FirstName: "Jane", LastName: "Austen"}
	s.author.On("Create", mock.Anything, mock.MatchedBy(func(a *catalog.Author) bool {
		return a.FirstName == "Jane" && a.LastName == "Austen" && a.DateOfBirth != nil
	})).Return(created, nil)

	form := url.Values{
		"first_name":    {"Jane"},
		"last_name":     {"Austen"},
		"date_of_birth": {"1775-12-16"},
	}
	w := doRequest(r, http.MethodPost, AuthorsPath+"/create", form.Encode(), cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, authorDetailPath(testAuthorID), w.Header().Get("Location"))
	s.author.AssertExpectations(t)
}

func TestAuthorHandler_CreatePost_MissingNameReRendersForm(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	form := url.Values{"first_name": {"Jane"}}
	w := doRequest(r, http.MethodPost, AuthorsPath+"/create", form.Encode(), cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	assert.Contains(t, w.Body.String(), `value="Jane"`)
	s.author.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthorHandler_CreatePost_DeathBeforeBirthRejected(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	form := url.Values{
		"first_name":    {"Jane"},
		"last_name":     {"Austen"},
		"date_of_birth": {"1817-07-18"},
		"date_of_death": {"1775-12-16"},
	}
	w := doRequest(r, http.MethodPost, AuthorsPath+"/create", form.Encode(), cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "date of death precedes date of birth")
	s.author.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthorHandler_UpdateGet_PrefillsStoredFields(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	birth := time.Date(1775, time.December, 16, 0, 0, 0, 0, time.UTC)
	author := &catalog.Author{ID: testAuthorID, FirstName: "Jane", LastName: "Austen", DateOfBirth: &birth}
	s.author.On("GetByID", mock.Anything, testAuthorID).Return(author, nil)

	w := doRequest(r, http.MethodGet, authorDetailPath(testAuthorID)+"/update", "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Update Author")
	assert.Contains(t, w.Body.String(), `value="Jane"`)
	assert.Contains(t, w.Body.String(), `value="1775-12-16"`)
}

func TestAuthorHandler_UpdatePost_AppliesFieldsAndRedirects(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	author := &catalog.Author{ID: testAuthorID, FirstName: "Jane", LastName: "Austen"}
	s.author.On("GetByID", mock.Anything, testAuthorID).Return(author, nil)
	s.author.On("Update", mock.Anything, mock.MatchedBy(func(a *catalog.Author) bool {
		return a.ID == testAuthorID && a.FirstName == "Jane" && a.LastName == "Austen-Leigh"
	})).Return(author, nil)

	form := url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Austen-Leigh"},
	}
	w := doRequest(r, http.MethodPost, authorDetailPath(testAuthorID)+"/update", form.Encode(), cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, authorDetailPath(testAuthorID), w.Header().Get("Location"))
	s.author.AssertExpectations(t)
}

func TestAuthorHandler_DeleteGet_ListsAuthorBooks(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	author := &catalog.Author{ID: testAuthorID, FirstName: "Jane", LastName: "Austen"}
	books := []*catalog.Book{
		{ID: testBookID, Title: "Emma", Summary: "s", Language: "English", AuthorID: testAuthorID},
	}
	s.author.On("GetByID", mock.Anything, testAuthorID).Return(author, nil)
	s.book.On("ListByAuthor", mock.Anything, testAuthorID).Return(books, nil)

	w := doRequest(r, http.MethodGet, authorDetailPath(testAuthorID)+"/delete", "", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Delete Author")
	assert.Contains(t, w.Body.String(), "Emma")
}

func TestAuthorHandler_DeletePost_RedirectsToList(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.author.On("DeleteByID", mock.Anything, testAuthorID).Return(nil)

	w := doRequest(r, http.MethodPost, authorDetailPath(testAuthorID)+"/delete", "", cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, AuthorsPath, w.Header().Get("Location"))
}

func TestAuthorHandler_DeletePost_RepeatedSubmitIs404(t *testing.T) {
	s := newTestServices()
	r := setupTestRouter(s)
	cookies := loginAs(t, r, s, librarianUser())

	s.author.On("DeleteByID", mock.Anything, testAuthorID).Return(catalog.ErrNotFound)

	w := doRequest(r, http.MethodPost, authorDetailPath(testAuthorID)+"/delete", "", cookies)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Author not found.")
}
