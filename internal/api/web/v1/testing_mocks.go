//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/domain/catalog"
)

// noopLogger discards log output in handler tests.
type noopLogger struct{}

func (noopLogger) Info(args ...interface{})  {}
func (noopLogger) Warn(args ...interface{})  {}
func (noopLogger) Error(args ...interface{}) {}
func (noopLogger) Fatal(args ...interface{}) {}
func (noopLogger) Panic(args ...interface{}) {}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summarize(ctx context.Context) (*catalog.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Summary), args.Error(1)
}

// MockBookService is a mock implementation of BookService
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) List(ctx context.Context, query *catalog.PageQuery) ([]*catalog.Book, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*catalog.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookService) GetByID(ctx context.Context, bookID string) (*catalog.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Book), args.Error(1)
}

func (m *MockBookService) Create(ctx context.Context, book *catalog.Book, genreIDs []string) (*catalog.Book, error) {
	args := m.Called(ctx, book, genreIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Book), args.Error(1)
}

func (m *MockBookService) Update(ctx context.Context, bookID string, changes catalog.BookChanges) (*catalog.Book, error) {
	args := m.Called(ctx, bookID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Book), args.Error(1)
}

func (m *MockBookService) DeleteByID(ctx context.Context, bookID string) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

func (m *MockBookService) ListByAuthor(ctx context.Context, authorID string) ([]*catalog.Book, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Book), args.Error(1)
}

func (m *MockBookService) ListGenres(ctx context.Context) ([]*catalog.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Genre), args.Error(1)
}

// MockAuthorService is a mock implementation of AuthorService
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) List(ctx context.Context, query *catalog.PageQuery) ([]*catalog.Author, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*catalog.Author), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuthorService) ListAll(ctx context.Context) ([]*catalog.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Author), args.Error(1)
}

func (m *MockAuthorService) GetByID(ctx context.Context, authorID string) (*catalog.Author, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Author), args.Error(1)
}

func (m *MockAuthorService) Create(ctx context.Context, author *catalog.Author) (*catalog.Author, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Author), args.Error(1)
}

func (m *MockAuthorService) Update(ctx context.Context, author *catalog.Author) (*catalog.Author, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Author), args.Error(1)
}

func (m *MockAuthorService) DeleteByID(ctx context.Context, authorID string) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

// MockLoanService is a mock implementation of LoanService
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) ListBorrowedBy(ctx context.Context, userID string, query *catalog.PageQuery) ([]*catalog.BookInstance, int64, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*catalog.BookInstance), args.Get(1).(int64), args.Error(2)
}

func (m *MockLoanService) ListOnLoan(ctx context.Context, query *catalog.PageQuery) ([]*catalog.BookInstance, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*catalog.BookInstance), args.Get(1).(int64), args.Error(2)
}

func (m *MockLoanService) GetCopyByID(ctx context.Context, copyID string) (*catalog.BookInstance, error) {
	args := m.Called(ctx, copyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.BookInstance), args.Error(1)
}

func (m *MockLoanService) ListCopiesOf(ctx context.Context, bookID string) ([]*catalog.BookInstance, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.BookInstance), args.Error(1)
}

func (m *MockLoanService) Renew(ctx context.Context, copyID string, dueBack time.Time) error {
	args := m.Called(ctx, copyID, dueBack)
	return args.Error(0)
}

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Authenticate(ctx context.Context, username, password string) (*accounts.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) Register(ctx context.Context, username, password string, permissions []string) (*accounts.User, error) {
	args := m.Called(ctx, username, password, permissions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}
